package static

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	root   http.FileSystem
	browse bool
	logger *zap.Logger
}

// NewFeature creates the static file feature serving root.
func NewFeature(root http.FileSystem, browse bool, logger *zap.Logger) *Feature {
	return &Feature{root: root, browse: browse, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.root != nil
}

// Load mounts the file server on every path. It must be loaded last since it
// answers every GET and HEAD.
func (f *Feature) Load(app fiber.Router) error {
	f.logger.Debug("Mounting static files", zap.Bool("browse", f.browse))
	app.Use(filesystem.New(filesystem.Config{
		Root:   f.root,
		Browse: f.browse,
		Index:  "index.html",
	}))
	return nil
}
