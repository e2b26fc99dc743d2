// Package docs registra el documento OpenAPI que sirve /swagger/*.
// Las anotaciones viven en los handlers; este template se regenera con `swag init -g cmd/api/main.go -o internal/docs`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["ops"], "summary": "Liveness", "responses": {"200": {"description": "ok"}}}},
        "/pets": {
            "get": {"tags": ["pets"], "summary": "Listar mis mascotas", "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}},
            "post": {"tags": ["pets"], "summary": "Registrar mascota", "responses": {"201": {"description": "Created"}, "400": {"description": "invalid input"}}}
        },
        "/pets/{petID}/vaccinations": {
            "get": {"tags": ["vaccinations"], "summary": "Listar vacunas de una mascota", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}, {"type": "string", "name": "status", "in": "query"}, {"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["vaccinations"], "summary": "Registrar vacuna", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/pets/{petID}/medications": {
            "get": {"tags": ["health"], "summary": "Listar medicaciones", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["health"], "summary": "Registrar medicación", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "400": {"description": "invalid json / fechas inválidas"}}}
        },
        "/pets/{petID}/appointments": {
            "get": {"tags": ["health"], "summary": "Listar citas", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}, {"type": "boolean", "name": "upcoming", "in": "query"}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["health"], "summary": "Agendar cita veterinaria", "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "400": {"description": "invalid json / fecha u hora inválidas"}}}
        },
        "/vaccinations/next-due": {
            "get": {"tags": ["vaccinations"], "summary": "Calcular próxima dosis", "parameters": [{"type": "string", "name": "administered", "in": "query", "required": true}, {"type": "integer", "name": "dose", "in": "query", "required": true}, {"type": "integer", "name": "age_months", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "parámetros inválidos"}}}
        },
        "/adoption/pets": {"get": {"tags": ["adoption"], "summary": "Listar mascotas en adopción", "responses": {"200": {"description": "OK"}}}},
        "/shop/products": {"get": {"tags": ["shop"], "summary": "Listar productos", "responses": {"200": {"description": "OK"}}}},
        "/shop/cart/quote": {"post": {"tags": ["shop"], "summary": "Cotizar carrito", "responses": {"200": {"description": "OK"}, "409": {"description": "out of stock"}}}},
        "/training/articles": {"get": {"tags": ["training"], "summary": "Listar artículos", "responses": {"200": {"description": "OK"}}}},
        "/training/videos": {"get": {"tags": ["training"], "summary": "Listar videos", "responses": {"200": {"description": "OK"}}}},
        "/lost-found/reports": {
            "get": {"tags": ["lost-found"], "summary": "Listar reportes", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["lost-found"], "summary": "Crear reporte", "responses": {"201": {"description": "Created"}}}
        },
        "/community/posts": {
            "get": {"tags": ["community"], "summary": "Listar posts", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["community"], "summary": "Publicar post", "responses": {"201": {"description": "Created"}}}
        },
        "/grooming/availability": {"get": {"tags": ["grooming"], "summary": "Horarios libres de un groomer", "responses": {"200": {"description": "OK"}}}},
        "/grooming/bookings": {"post": {"tags": ["grooming"], "summary": "Reservar turno", "responses": {"201": {"description": "Created"}, "409": {"description": "slot taken"}}}},
        "/emergency": {"get": {"tags": ["emergency"], "summary": "Contactos y primeros auxilios", "responses": {"200": {"description": "OK"}}}},
        "/search": {"get": {"tags": ["search"], "summary": "Búsqueda global", "parameters": [{"type": "string", "name": "q", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "q required"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PetCare Hub API",
	Description:      "Mascotas, vacunas, adopción, tienda, entrenamiento, perdidos y encontrados, comunidad y grooming.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
