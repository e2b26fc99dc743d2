package router

import (
	"context"
	"net/http"
	"time"

	"petcare-hub/internal/adapters/seed"
	mem "petcare-hub/internal/adapters/storage/memory"
	"petcare-hub/internal/adapters/storage/sqlstore"
	_ "petcare-hub/internal/docs"
	"petcare-hub/internal/domain/adoption"
	"petcare-hub/internal/domain/community"
	"petcare-hub/internal/domain/emergency"
	"petcare-hub/internal/domain/grooming"
	"petcare-hub/internal/domain/healthrecords"
	"petcare-hub/internal/domain/lostfound"
	"petcare-hub/internal/domain/pets"
	"petcare-hub/internal/domain/search"
	"petcare-hub/internal/domain/shop"
	"petcare-hub/internal/domain/training"
	"petcare-hub/internal/domain/vaccinations"
	"petcare-hub/internal/middleware"
	"petcare-hub/internal/platform/logger"
	"petcare-hub/internal/ports/auth"
	"petcare-hub/internal/ports/snapshot"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger       logger.Logger     // nil => Nop
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, persiste en SQL (pgx o sqlite). Si no, in-memory.
	Store *sqlstore.Store

	// Catálogo de solo lectura; nil => catálogo embebido.
	Catalog *seed.Catalog

	// Zona para el "hoy" calendario y las citas. Default UTC.
	Location     *time.Location
	UpcomingDays int
}

type repos struct {
	pets         pets.Repository
	vaccinations vaccinations.Repository
	reports      lostfound.Repository
	posts        community.Repository
	bookings     grooming.Repository
	medications  healthrecords.MedicationRepository
	appointments healthrecords.AppointmentRepository
}

func newRepos(store *sqlstore.Store) repos {
	if store != nil {
		return repos{
			pets:         sqlstore.NewPetsRepo(store),
			vaccinations: sqlstore.NewVaccinationsRepo(store),
			reports:      sqlstore.NewReportsRepo(store),
			posts:        sqlstore.NewPostsRepo(store),
			bookings:     sqlstore.NewBookingsRepo(store),
			medications:  sqlstore.NewMedicationsRepo(store),
			appointments: sqlstore.NewAppointmentsRepo(store),
		}
	}
	return repos{
		pets:         mem.NewPetRepo(),
		vaccinations: mem.NewVaccinationRepo(),
		reports:      mem.NewReportRepo(),
		posts:        mem.NewPostRepo(),
		bookings:     mem.NewBookingRepo(),
		medications:  mem.NewMedicationRepo(),
		appointments: mem.NewAppointmentRepo(),
	}
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	catalog := opts.Catalog
	if catalog == nil {
		c, err := seed.Default()
		if err != nil {
			return nil, err
		}
		catalog = &c
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// AuthContext antes del log para que el access log vea el user_id.
	r.Use(middleware.AuthContext(opts.AuthVerifier, log))
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", healthHandler(opts.Store))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	rp := newRepos(opts.Store)

	// Services por módulo
	petsSvc := pets.NewService(rp.pets, loc)
	vaccSvc := vaccinations.NewService(rp.vaccinations, petsSvc, vaccinations.Options{
		Location:     loc,
		UpcomingDays: opts.UpcomingDays,
	})
	healthSvc := healthrecords.NewService(rp.medications, rp.appointments, petsSvc, loc)
	adoptionSvc := adoption.NewService(snapshot.NewStatic(catalog.AdoptionPets))
	shopSvc := shop.NewService(snapshot.NewStatic(catalog.Products))
	trainingSvc := training.NewService(snapshot.NewStatic(catalog.Articles), snapshot.NewStatic(catalog.Videos))
	lostSvc := lostfound.NewService(rp.reports, snapshot.NewStatic(catalog.LostFound), loc)
	communitySvc := community.NewService(rp.posts)
	groomingSvc := grooming.NewService(rp.bookings,
		snapshot.NewStatic(catalog.GroomingServices),
		snapshot.NewStatic(catalog.Groomers),
		loc)
	emergencySvc := emergency.NewService(snapshot.NewStatic(catalog.EmergencyContacts), snapshot.NewStatic(catalog.FirstAidTips))
	searchSvc := search.NewService(adoptionSvc, shopSvc, trainingSvc, lostSvc)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	vaccinations.RegisterRoutes(r, vaccSvc)
	healthrecords.RegisterRoutes(r, healthSvc)
	adoption.RegisterRoutes(r, adoptionSvc)
	shop.RegisterRoutes(r, shopSvc)
	training.RegisterRoutes(r, trainingSvc)
	lostfound.RegisterRoutes(r, lostSvc)
	community.RegisterRoutes(r, communitySvc)
	grooming.RegisterRoutes(r, groomingSvc)
	emergency.RegisterRoutes(r, emergencySvc)
	search.RegisterRoutes(r, searchSvc)

	return r, nil
}

// healthHandler godoc
// @Summary Liveness
// @Tags ops
// @Success 200 {string} string "ok"
// @Failure 503 {string} string "database unavailable"
// @Router /health [get]
func healthHandler(store *sqlstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
