package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"treeboard/core/config"
	"treeboard/core/database"
	"treeboard/core/loader"
	"treeboard/core/logger"
	"treeboard/core/middleware/auth"
	"treeboard/core/middleware/rayid"
	"treeboard/core/storage"
	"treeboard/core/treecache"
	"treeboard/feature/dashboard"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Treeboard API
// @version 1.0
// @description API for the aggregated inventory tree dashboard.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the treeboard server",
	Long:  `Starts the HTTP server, loads the dashboard feature, and optionally refreshes the tree on a timer.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Server.IsValidMode() {
			log.Fatalf("Invalid server mode: %q", cfg.Server.Mode)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Without it the tree is built from storage alone.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to emulator database", zap.String("name", cfg.Database.Name))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Development tree cache
		var cache dashboard.Cache
		if cfg.Server.IsDevelopment() {
			ensureCacheBucket(store, cfg.Cache, logg)
			cache = treecache.NewStore(store, cfg.Cache, logg)
			logg.Info("Development mode: tree cache enabled",
				zap.String("bucket", cfg.Cache.Bucket),
				zap.String("object", cfg.Cache.Object))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// 7. Feature Loader
		feature := dashboard.NewFeature(store, cfg.Storage.Bucket, cache, db, logg)
		mgr := loader.NewManager()
		mgr.Register(feature)

		// Middleware: RayID first so everything is traceable.
		app.Use(rayid.New())
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

		// Swagger documentation (public; spec generated via swag init)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects everything below.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Background refresh
		refreshCtx, stopRefresh := context.WithCancel(context.Background())
		defer stopRefresh()

		svc := feature.Service()
		go svc.Invalidate(refreshCtx, false) // warm the tree on boot

		if interval := cfg.Server.RefreshIntervalSeconds; interval > 0 {
			go periodicRefresh(refreshCtx, svc, time.Duration(interval)*time.Second, logg)
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("mode", cfg.Server.Mode))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopRefresh()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// periodicRefresh invalidates the tree on a fixed interval until ctx ends.
func periodicRefresh(ctx context.Context, svc *dashboard.Service, interval time.Duration, logg *zap.Logger) {
	logg.Info("Periodic tree refresh enabled", zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.Invalidate(ctx, false)
		}
	}
}

// ensureCacheBucket creates the cache bucket if it doesn't exist yet.
// Failures are logged only; the cache degrades to a permanent miss.
func ensureCacheBucket(store storage.Client, cfg treecache.Config, logg *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	exists, err := store.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logg.Warn("Failed to check tree cache bucket", zap.Error(err))
		return
	}
	if exists {
		return
	}
	if err := store.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
		logg.Warn("Failed to create tree cache bucket", zap.Error(err))
	}
}
