package router

import (
	"net/http"

	_ "animal-training-api/docs"
	"animal-training-api/internal/adapters/storage"
	"animal-training-api/internal/domain/animals"
	"animal-training-api/internal/domain/training"
	"animal-training-api/internal/domain/users"
	"animal-training-api/internal/middleware"
	"animal-training-api/internal/platform/httpjson"
	"animal-training-api/internal/platform/logger"
	"animal-training-api/internal/platform/metrics"
	"animal-training-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Tokens emite (verify) y verifica (rutas protegidas). Obligatorio.
	Tokens auth.TokenService

	// Opcional: si Repos viene vacío se usan repos en memoria.
	Repos storage.Repositories

	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => se crea uno propio
}

type healthResponse struct {
	Healthy bool `json:"healthy"`
}

type rootResponse struct {
	Hello   string `json:"Hello"`
	Version int    `json:"Version"`
}

func NewRouter(opts Options) http.Handler {
	if opts.Tokens == nil {
		panic("router: Options.Tokens is required")
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	repos := opts.Repos
	if repos.Users == nil || repos.Animals == nil || repos.Training == nil {
		repos = storage.Memory()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(m.Middleware)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		// Refleja cualquier Origin (equivale a origin: true).
		AllowOriginFunc:  func(_ *http.Request, _ string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Services por módulo
	usersSvc := users.NewService(repos.Users, opts.Tokens)
	animalsSvc := animals.NewService(repos.Animals)
	trainingSvc := training.NewService(repos.Training, animalsSvc)

	requireAuth := middleware.RequireAuth(opts.Tokens, log)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Write(w, http.StatusOK, rootResponse{Hello: "World", Version: 2})
	})

	r.Route("/api", func(api chi.Router) {
		// healthHandler godoc
		// @Summary Health check
		// @Description No consulta la base; solo indica que el proceso responde.
		// @Tags health
		// @Produce json
		// @Success 200 {object} healthResponse
		// @Router /api/health [get]
		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			httpjson.Write(w, http.StatusOK, healthResponse{Healthy: true})
		})

		// Rutas por módulo
		users.RegisterRoutes(api, usersSvc, log)
		animals.RegisterRoutes(api, animalsSvc, requireAuth, log)
		training.RegisterRoutes(api, trainingSvc, requireAuth, log)

		// Listados sin auth.
		api.Route("/admin", func(ar chi.Router) {
			users.RegisterAdminRoutes(ar, usersSvc, log)
			animals.RegisterAdminRoutes(ar, animalsSvc, log)
			training.RegisterAdminRoutes(ar, trainingSvc, log)
		})
	})

	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
