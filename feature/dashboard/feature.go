package dashboard

import (
	"treeboard/core/storage"
	"treeboard/feature/dashboard/providers"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the dashboard feature. db may be nil when the
// emulator database is unreachable; the tree is then built from storage
// alone. cache may be nil outside development mode.
func NewFeature(client storage.Client, bucket string, cache Cache, db *gorm.DB, logger *zap.Logger) *Feature {
	var provs []providers.Provider
	if db != nil {
		provs = append(provs, providers.NewDatabase(db))
	}
	provs = append(provs, providers.NewCatalog(client, bucket))

	svc := NewService(provs, cache, nil, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dashboard"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the coordinator for callers outside the HTTP surface,
// such as the periodic refresher and the one-shot CLI.
func (f *Feature) Service() *Service {
	return f.service
}
