package search

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/slovar-dev/slovar/internal/domain"
)

// SearchIndex wraps an in-memory Bleve index of the catalog.
//
// Thread safety: All public methods are safe for concurrent use.
type SearchIndex struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// Options configures the search index.
type Options struct {
	Logger *slog.Logger // Logger for operations (discards if nil)
}

// batchSize bounds the documents committed per Bleve batch.
const batchSize = 500

// NewSearchIndex creates an empty in-memory index.
func NewSearchIndex(opts Options) (*SearchIndex, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SearchIndex{
		index:  index,
		logger: logger,
	}, nil
}

// Build creates an index holding every term.
func Build(terms []domain.Term, opts Options) (*SearchIndex, error) {
	idx, err := NewSearchIndex(opts)
	if err != nil {
		return nil, err
	}
	if err := idx.IndexTerms(terms); err != nil {
		_ = idx.Close()
		return nil, err
	}
	idx.logger.Debug("search index built", "documents", len(terms))
	return idx, nil
}

// Close closes the index and releases resources.
func (s *SearchIndex) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// IndexTerms indexes terms in batches. Slice order becomes the unranked result order.
func (s *SearchIndex) IndexTerms(terms []domain.Term) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := 0; i < len(terms); i += batchSize {
		end := min(i+batchSize, len(terms))

		batch := s.index.NewBatch()
		for j, t := range terms[i:end] {
			doc := TermToDocument(t, i+j)
			if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
				return fmt.Errorf("batch index %s: %w", doc.ID, err)
			}
		}

		if err := s.index.Batch(batch); err != nil {
			return fmt.Errorf("commit batch %d-%d: %w", i, end, err)
		}
	}

	return nil
}

// DocumentCount returns the total number of indexed documents.
func (s *SearchIndex) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}
