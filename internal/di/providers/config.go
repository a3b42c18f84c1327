// Package providers contains dependency injection providers for the dictionary.
package providers

import (
	"io"

	"github.com/samber/do/v2"

	"github.com/slovar-dev/slovar/internal/catalog"
	"github.com/slovar-dev/slovar/internal/config"
	"github.com/slovar-dev/slovar/internal/logger"
)

// ProvideConfig resolves configuration from the CLI flags registered in the injector.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	flags, err := do.Invoke[config.Flags](i)
	if err != nil {
		flags = config.Flags{}
	}
	return config.Load(flags)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	var w io.Writer
	if named, err := do.InvokeNamed[io.Writer](i, LogWriterName); err == nil {
		w = named
	}

	log := logger.New(logger.Config{
		Writer:      w,
		Format:      cfg.Logger.Format,
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development" && cfg.Logger.Level == "debug",
		Environment: cfg.App.Environment,
	})

	log.Debug("Logger initialized",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
	)

	return log, nil
}

// ProvideCatalog loads the term catalog once. The dataset path comes from
// configuration; an empty path selects the embedded seed.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	src := catalog.SourceFor(cfg.Data.Path)
	cat, err := catalog.Load(src)
	if err != nil {
		log.WithError(err).Error("Failed to load catalog", "source", src.Name())
		return nil, err
	}

	log.Debug("Catalog loaded",
		"source", cat.Source(),
		"terms", cat.Len(),
		"letters", len(cat.Letters()),
	)
	return cat, nil
}
