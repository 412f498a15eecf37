package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"strconv"

	mem "entaltek-sabueso/internal/adapters/storage/memory"
	pg "entaltek-sabueso/internal/adapters/storage/postgres"

	notifywebhook "entaltek-sabueso/internal/adapters/notify/webhook"
	"entaltek-sabueso/internal/domain/catalog"
	"entaltek-sabueso/internal/domain/checkins"
	"entaltek-sabueso/internal/domain/dashboard"
	"entaltek-sabueso/internal/domain/dogs"
	"entaltek-sabueso/internal/domain/employees"
	"entaltek-sabueso/internal/domain/owners"
	"entaltek-sabueso/internal/middleware"
	"entaltek-sabueso/internal/platform/logger"
	"entaltek-sabueso/internal/ports/notify"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Logger logger.Logger // puede ser nil

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: destino de notificaciones. Si es nil se resuelve por env
	// (NOTIFY_WEBHOOK_URL) o se descarta.
	Notifier notify.Notifier
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.ActorContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		dogRepo      dogs.Repository
		ownerRepo    owners.Repository
		employeeRepo employees.Repository
		checkInRepo  checkins.Repository
		catalogRepo  catalog.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				log.Warn("no se pudo abrir postgres, usando memoria", map[string]any{"error": err})
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		if err := pg.RunMigrations(context.Background(), db); err != nil {
			log.Error("migraciones fallaron", map[string]any{"error": err})
		}
		dogRepo = pg.NewDogsRepo(db)
		ownerRepo = pg.NewOwnersRepo(db)
		employeeRepo = pg.NewEmployeesRepo(db)
		checkInRepo = pg.NewCheckInsRepo(db)
		catalogRepo = pg.NewCatalogRepo(db)
	} else {
		dogRepo = mem.NewDogRepo()
		ownerRepo = mem.NewOwnerRepo()
		employeeRepo = mem.NewEmployeeRepo()
		checkInRepo = mem.NewCheckInRepo()
		catalogRepo = mem.NewCatalogRepo()

		if os.Getenv("SEED_DEMO") != "" {
			if err := mem.Seed(context.Background(), dogRepo, ownerRepo, employeeRepo, checkInRepo, catalogRepo); err != nil {
				log.Warn("seed de demo falló", map[string]any{"error": err})
			}
		}
	}

	notifier := opts.Notifier
	if notifier == nil {
		if url := os.Getenv("NOTIFY_WEBHOOK_URL"); url != "" {
			notifier = notifywebhook.New(url, log)
		} else {
			notifier = notify.Nop{}
		}
	}

	// Services por módulo. El orden importa: owners no depende de nadie,
	// dogs mira owners, checkins mira a los dos vía directorios.
	ownersSvc := owners.NewService(ownerRepo)
	dogsSvc := dogs.NewService(dogRepo, ownersSvc)
	employeesSvc := employees.NewService(employeeRepo, dogsSvc)
	checkinsSvc := checkins.NewService(checkInRepo, dogDirectory{svc: dogsSvc}, ownersSvc)
	catalogSvc := catalog.NewCatalog(catalogRepo)

	capacity := dashboard.DefaultCapacity
	if v := os.Getenv("FACILITY_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			capacity = n
		}
	}
	dashboardSvc := dashboard.NewService(checkinsSvc, dogsSvc, capacity)

	// Rutas por módulo
	dogs.RegisterRoutes(r, dogsSvc, notifier)
	owners.RegisterRoutes(r, ownersSvc, dogsSvc, notifier)
	employees.RegisterRoutes(r, employeesSvc, dogsSvc, checkinsSvc, notifier)
	checkins.RegisterRoutes(r, checkinsSvc, notifier)
	catalog.RegisterRoutes(r, catalogSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}
