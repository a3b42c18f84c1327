package providers

import (
	"github.com/samber/do/v2"

	"github.com/slovar-dev/slovar/internal/catalog"
	"github.com/slovar-dev/slovar/internal/logger"
	"github.com/slovar-dev/slovar/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.SearchIndex
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex builds the in-memory Bleve index over the catalog.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cat := do.MustInvoke[*catalog.Catalog](i)
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.Build(cat.Terms(), search.Options{
		Logger: log.Logger,
	})
	if err != nil {
		return nil, err
	}

	docCount, _ := index.DocumentCount()
	log.Debug("Search index initialized", "documents", docCount)

	return &SearchIndexHandle{SearchIndex: index}, nil
}
