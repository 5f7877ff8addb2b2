package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/shared/pkg/db"
	_ "github.com/casperdash/discord-interactions-api/docs" // Import Swagger docs
	"github.com/casperdash/discord-interactions-api/internal/config"
	"github.com/casperdash/discord-interactions-api/internal/controllers/interactions"
	"github.com/casperdash/discord-interactions-api/internal/interaction"
	"github.com/casperdash/discord-interactions-api/internal/services/profilerepo"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// InteractionsPath is the interactions endpoint URL configured in the Discord developer portal.
const InteractionsPath = "/api/interactions"

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
	store.WaitForDB(logger)

	repo := profilerepo.NewRepository(store.DBS().Reader.DB)

	app, err := CreateFiberApp(logger, repo, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, repo interactions.ProfileRepository, settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting Discord Interactions API...")

	verifier, err := interaction.NewVerifier(settings.DiscordPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load DISCORD_PUBLIC_KEY: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Discord Interactions API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	dispatcher := interactions.NewDispatcher(repo, interactions.Options{
		VerifyWalletURL:    settings.VerifyWalletURL,
		AccountExplorerURL: settings.AccountExplorerURL,
	})
	interactionsController := interactions.NewInteractionsController(dispatcher)
	logger.Info().Msg("Registering routes...")

	// Every method goes through verification, unsigned requests never reach the dispatcher.
	app.All(InteractionsPath, interactions.VerifyMiddleware(verifier), interactionsController.HandleInteraction)

	return app, nil
}
