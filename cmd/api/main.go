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

	"github.com/gabiv12/panol-erp/internal/application/auth"
	"github.com/gabiv12/panol-erp/internal/application/flota"
	"github.com/gabiv12/panol-erp/internal/application/inventory"
	"github.com/gabiv12/panol-erp/internal/application/usecase"
	infrapdf "github.com/gabiv12/panol-erp/internal/infrastructure/pdf"
	"github.com/gabiv12/panol-erp/internal/infrastructure/postgres"
	httpRouter "github.com/gabiv12/panol-erp/internal/interfaces/http"
	"github.com/gabiv12/panol-erp/pkg/config"
	"github.com/gabiv12/panol-erp/pkg/logger"
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

	loc := cfg.App.Location()

	productoRepo := postgres.NewProductoRepository(pool)
	ubicacionRepo := postgres.NewUbicacionRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	colectivoRepo := postgres.NewColectivoRepository(pool)
	choferRepo := postgres.NewChoferRepository(pool)
	parteRepo := postgres.NewParteRepository(pool)
	salidaRepo := postgres.NewSalidaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movimientoUC := inventory.NewMovimientoUseCase(txRunner, productoRepo, ubicacionRepo, colectivoRepo)
	consultaUC := inventory.NewConsultaStockUseCase(stockRepo, movimientoRepo)

	planPDF := infrapdf.NewMarotoPlanGenerator(cfg.App.Name, loc)
	salidaUC := flota.NewSalidaUseCase(salidaRepo, colectivoRepo, choferRepo, loc, planPDF)
	parteUC := flota.NewParteUseCase(parteRepo, colectivoRepo)

	productoUC := usecase.NewProductoUseCase(productoRepo)
	ubicacionUC := usecase.NewUbicacionUseCase(ubicacionRepo)
	colectivoUC := usecase.NewColectivoUseCase(colectivoRepo, loc)
	choferUC := usecase.NewChoferUseCase(choferRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	auditoriaUC := usecase.NewAuditoriaUseCase(auditRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Pañol ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductoUC:   productoUC,
		UbicacionUC:  ubicacionUC,
		MovimientoUC: movimientoUC,
		ConsultaUC:   consultaUC,
		ColectivoUC:  colectivoUC,
		ChoferUC:     choferUC,
		ParteUC:      parteUC,
		SalidaUC:     salidaUC,
		UsuarioUC:    usuarioUC,
		AuditoriaUC:  auditoriaUC,
		AuditRepo:    auditRepo,
		JWTSecret:    cfg.JWT.Secret,
		Location:     loc,
		Log:          log.Zerolog(),
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
