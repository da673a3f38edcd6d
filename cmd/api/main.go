package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/autolavado/lavadero-api/internal/application/auth"
	"github.com/autolavado/lavadero-api/internal/application/authz"
	apppedido "github.com/autolavado/lavadero-api/internal/application/pedido"
	appreporte "github.com/autolavado/lavadero-api/internal/application/reporte"
	"github.com/autolavado/lavadero-api/internal/application/usecase"
	infrapdf "github.com/autolavado/lavadero-api/internal/infrastructure/pdf"
	"github.com/autolavado/lavadero-api/internal/infrastructure/postgres"
	"github.com/autolavado/lavadero-api/internal/infrastructure/storage"
	httpRouter "github.com/autolavado/lavadero-api/internal/interfaces/http"
	"github.com/autolavado/lavadero-api/pkg/config"
	"github.com/autolavado/lavadero-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	perfilRepo := postgres.NewPerfilRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	permisoRepo := postgres.NewPermisoRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	servicioRepo := postgres.NewServicioRepository(pool)
	turnoRepo := postgres.NewTurnoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)

	auditor := usecase.NewAuditor(auditoriaRepo)
	loader := authz.NewLoader(perfilRepo, rolRepo, permisoRepo)

	authUC := auth.NewAuthUseCase(perfilRepo, rolRepo, loader, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productoUC := usecase.NewProductoUseCase(productoRepo, auditor)
	servicioUC := usecase.NewServicioUseCase(servicioRepo, auditor)
	perfilUC := usecase.NewPerfilUseCase(perfilRepo, rolRepo, auditor)
	rolUC := usecase.NewRolUseCase(rolRepo, permisoRepo, auditor)
	turnoUC := usecase.NewTurnoUseCase(turnoRepo, servicioRepo, auditor, usecase.DisponibilidadPolicy{
		OnCheckError: cfg.Turnos.OnCheckError,
	})
	pedidoUC := apppedido.NewUseCase(pedidoRepo, productoRepo, perfilRepo)

	// PDF: exports del panel admin
	reporteGen := infrapdf.NewMarotoReporteGenerator()
	reporteUC := appreporte.NewUseCase(pedidoRepo, turnoRepo, servicioRepo, perfilRepo, reporteGen)

	bucket := storage.NewBucketClient(cfg.Storage)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lavadero API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Loader:     loader,
		ProductoUC: productoUC,
		ServicioUC: servicioUC,
		PerfilUC:   perfilUC,
		RolUC:      rolUC,
		TurnoUC:    turnoUC,
		PedidoUC:   pedidoUC,
		ReporteUC:  reporteUC,
		Auditor:    auditor,
		Bucket:     bucket,
		JWTSecret:  cfg.JWT.Secret,
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
