package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"icevision/core/config"
	"icevision/core/database"
	"icevision/core/loader"
	"icevision/core/logger"
	"icevision/core/middleware/auth"
	"icevision/core/middleware/rayid"
	"icevision/core/storage"

	"icevision/feature/employee"
	"icevision/feature/ledger"
	"icevision/feature/recognition"
	"icevision/feature/session"
	"icevision/feature/vision"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "icevision/docs/swagger"
)

// @title IceVision Backend API
// @version 1.0
// @description API for the smart fridge employee access system.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the backend server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Required)
		// Sessions and the consumption ledger live here; nothing works without it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("database", cfg.Database.Name))

		// 4. Initialize Storage (Optional)
		// Face photos are skipped when no endpoint is configured.
		var store storage.Client
		if cfg.Storage.Enabled() {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			if err := storage.EnsureBucket(context.Background(), store, cfg.Storage.Bucket); err != nil {
				logg.Fatal("Failed to ensure storage bucket", zap.Error(err))
			}
			logg.Info("Face photo storage ready", zap.String("bucket", cfg.Storage.Bucket))
		} else {
			logg.Warn("Storage not configured, face photos will not be stored")
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		// Session close depends on the employee, vision and ledger services, so
		// those features are built first and their services passed in.
		employeeFeature := employee.NewFeature(db, store, cfg.Storage.Bucket, logg)
		visionFeature := vision.NewFeature(db, cfg.Reconcile, logg)
		ledgerFeature := ledger.NewFeature(db, logg)

		mgr.Register(employeeFeature)
		mgr.Register(visionFeature)
		mgr.Register(ledgerFeature)
		mgr.Register(recognition.NewFeature(db, employeeFeature.Service(), logg))
		mgr.Register(session.NewFeature(db, employeeFeature.Service(), visionFeature.Store(), ledgerFeature.Service(), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. CORS (the fridge kiosk UI runs on a different origin)
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CorsOrigins}))

		// 3. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
