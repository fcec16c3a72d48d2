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

	"github.com/imobcrm/crm-imobiliario-api/internal/application/usecase"
	"github.com/imobcrm/crm-imobiliario-api/internal/infrastructure/brasilapi"
	"github.com/imobcrm/crm-imobiliario-api/internal/infrastructure/postgres"
	httpRouter "github.com/imobcrm/crm-imobiliario-api/internal/interfaces/http"
	"github.com/imobcrm/crm-imobiliario-api/pkg/config"
	"github.com/imobcrm/crm-imobiliario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	personRepo := postgres.NewPersonRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)

	personUC := usecase.NewPersonUseCase(personRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, personRepo)
	brasilClient := brasilapi.NewClient(cfg.BrasilAPI.BaseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-Request-ID",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CRM Imobiliário API",
			"version": "1.0.0",
			"docs":    "/docs",
		})
	})
	app.Get("/health", httpRouter.HealthHandler(pool.Ping))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PersonUC:  personUC,
		CompanyUC: companyUC,
		BrasilAPI: brasilClient,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
