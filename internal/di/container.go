// Package di provides dependency injection configuration for the dictionary.
package di

import (
	"io"

	"github.com/samber/do/v2"

	"github.com/slovar-dev/slovar/internal/catalog"
	"github.com/slovar-dev/slovar/internal/config"
	"github.com/slovar-dev/slovar/internal/di/providers"
	"github.com/slovar-dev/slovar/internal/logger"
)

// Options seeds the container with values known before any provider runs.
type Options struct {
	Flags     config.Flags
	LogWriter io.Writer // nil means stderr
}

// NewContainer creates and configures the DI container with all providers.
// Providers are lazy: read-only commands never build the HTTP stack.
func NewContainer(opts Options) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, opts.Flags)
	if opts.LogWriter != nil {
		do.ProvideNamedValue(injector, providers.LogWriterName, opts.LogWriter)
	}

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Data
	do.Provide(injector, providers.ProvideCatalog)
	do.Provide(injector, providers.ProvideSearchIndex)

	// Server
	do.Provide(injector, providers.ProvideRateLimiter)
	do.Provide(injector, providers.ProvideAPIServer)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap loads configuration, the logger and the catalog, surfacing the first
// failure as an error instead of a panic.
func Bootstrap(injector do.Injector) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*catalog.Catalog](injector); err != nil {
		return err
	}
	return nil
}
