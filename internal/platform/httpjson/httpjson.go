// Package httpjson reúne los helpers de request/response JSON de los handlers.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// MaxBodyBytes es el tamaño máximo aceptado para un body JSON.
const MaxBodyBytes = 1 << 20

// Write serializa v como JSON con el status indicado.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Limit corta la lectura del body en MaxBodyBytes.
func Limit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
}

// Decode lee el body JSON (hasta MaxBodyBytes) rechazando campos desconocidos.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	Limit(w, r)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
