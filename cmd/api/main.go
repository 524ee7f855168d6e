package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/ventas-instalaciones/docs"
	appanalytics "github.com/jhoicas/ventas-instalaciones/internal/application/analytics"
	"github.com/jhoicas/ventas-instalaciones/internal/application/auth"
	"github.com/jhoicas/ventas-instalaciones/internal/application/usecase"
	"github.com/jhoicas/ventas-instalaciones/internal/infrastructure/cache"
	infraexport "github.com/jhoicas/ventas-instalaciones/internal/infrastructure/export"
	infrmail "github.com/jhoicas/ventas-instalaciones/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/ventas-instalaciones/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-instalaciones/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ventas-instalaciones/internal/interfaces/http"
	"github.com/jhoicas/ventas-instalaciones/pkg/config"
	"github.com/jhoicas/ventas-instalaciones/pkg/logger"
)

// sessionStore contadores de login y sesiones revocadas (Redis o memoria).
type sessionStore interface {
	auth.AttemptStore
	auth.SessionRevoker
	Ping(ctx context.Context) error
}

// @title                       Ventas e Instalaciones API
// @version                     1.0
// @description                 Ventas, agendamiento de visitas y aprovisionamiento de servicios de internet.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("aplicadas", applied).Msg("migraciones al día")
	}

	var store sessionStore
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		store = cache.NewRedisStore(rdb)
		log.Info().Msg("intentos de login y sesiones en Redis")
	} else {
		store = cache.NewMemoryStore()
		log.Warn().Msg("REDIS_URL vacío: intentos de login y sesiones en memoria (una sola instancia)")
	}

	adminRepo := postgres.NewAdministradorRepository(pool)
	moduloRepo := postgres.NewModuloRepository(pool)
	permisoRepo := postgres.NewPermisoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	agendamientoRepo := postgres.NewAgendamientoRepository(pool)
	aprovRepo := postgres.NewAprovisionamientoRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	municipioRepo := postgres.NewMunicipioRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditoriaUC := usecase.NewAuditoriaUseCase(auditoriaRepo, log)
	moduleSvc := usecase.NewModuleService(moduloRepo, permisoRepo, txRunner, auditoriaUC)

	// Correo al cliente al agendar o reprogramar; sin SMTP_HOST no se envía nada.
	var notifier usecase.VisitNotifier
	if cfg.SMTP.Enabled() {
		notifier = infrmail.NewSMTPNotifier(cfg.SMTP, cfg.App.Name)
	} else {
		log.Warn().Msg("SMTP_HOST vacío: notificaciones de visita desactivadas")
	}

	authUC := auth.NewAuthUseCase(adminRepo, moduleSvc, store, store, auditoriaUC, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		Issuer:  cfg.JWT.Issuer,
		Timeout: cfg.Session.Timeout(),
	}, auth.LimiterConfig{
		MaxAttempts: cfg.Session.LoginMaxAttempts,
		Window:      cfg.Session.LockWindow(),
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		UnescapePath: true,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigins,
		AllowCredentials: cfg.HTTP.CORSOrigins != "*",
		ExposeHeaders:    httpRouter.HeaderSessionToken,
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		status, code := "ok", fiber.StatusOK
		if err := pool.Ping(c.UserContext()); err != nil {
			status, code = "db_unavailable", fiber.StatusServiceUnavailable
		} else if err := store.Ping(c.UserContext()); err != nil {
			status, code = "cache_unavailable", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{"status": status, "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		ModuleService:     moduleSvc,
		VentaUC:           usecase.NewVentaUseCase(ventaRepo, adminRepo, infraexport.NewCSVExporter(), auditoriaUC),
		AgendamientoUC:    usecase.NewAgendamientoUseCase(agendamientoRepo, ventaRepo, notifier, auditoriaUC, log),
		Aprovisionamiento: usecase.NewAprovisionamientoUseCase(aprovRepo, ventaRepo, agendamientoRepo, auditoriaUC),
		UsuarioUC:         usecase.NewUsuarioUseCase(adminRepo, moduleSvc, auditoriaUC),
		PermisoUC:         usecase.NewPermisoUseCase(permisoRepo, auditoriaUC),
		AuditoriaUC:       auditoriaUC,
		CatalogoUC:        usecase.NewCatalogoUseCase(municipioRepo),
		DocumentosUC:      usecase.NewDocumentosUseCase(ventaRepo, agendamientoRepo, aprovRepo, infrapdf.NewMarotoOrdenGenerator(cfg.App.Name)),
		DashboardUC:       appanalytics.NewDashboardUseCase(dashboardRepo),
		PanelUC:           appanalytics.NewPanelUseCase(dashboardRepo),
		Cookie:            httpRouter.CookieConfig{Secure: cfg.Session.CookieSecure},
		Log:               log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
