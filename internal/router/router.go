package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "kitten-shop/docs"
	mem "kitten-shop/internal/adapters/storage/memory"
	pg "kitten-shop/internal/adapters/storage/postgres"
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/domain/orders"
	"kitten-shop/internal/middleware"
	"kitten-shop/internal/platform/logger"
)

type Options struct {
	// Catalog backs GET /cats. Required.
	Catalog *catalog.Store

	// Secret guards the submission endpoints; empty means dev mode.
	Secret string

	// Notifier forwards accepted submissions to staff. May be nil.
	Notifier orders.AdminNotifier

	// Optional: submissions go to Postgres when set, in-memory otherwise.
	DB *sql.DB

	// Repo overrides the storage selection (for tests).
	Repo orders.Repository

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	r.Get("/cats", listCatsHandler(opts.Catalog))

	// Submissions storage: explicit repo > DB option > DB_DSN env > memory.
	repo := opts.Repo
	if repo == nil {
		db := opts.DB
		if db == nil {
			if dsn := os.Getenv("DB_DSN"); dsn != "" {
				if opened, err := pg.Open(dsn); err == nil {
					db = opened
				} else {
					log.Warn("postgres unavailable, using in-memory storage", map[string]any{"error": err.Error()})
				}
			}
		}
		if db != nil {
			repo = pg.NewSubmissionsRepo(db)
		} else {
			repo = mem.NewSubmissionsRepo()
		}
	}

	svc := orders.NewService(repo, opts.Notifier, log)

	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireSecret(opts.Secret))
		orders.RegisterRoutes(gr, svc)
	})

	return r
}

// listCatsHandler serves the whole catalog snapshot as a JSON array.
func listCatsHandler(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.LoadErr(); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "catalog unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(store.All())
	}
}
