package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/ru"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for term documents.
//
// Text fields use the Russian analyzer (stemming, stop words). Genre and letter
// are keyword fields for exact filtering and faceting.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = ru.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields ---

	// Term name - primary target, stored for hits and highlighting
	termFieldMapping := bleve.NewTextFieldMapping()
	termFieldMapping.Analyzer = ru.AnalyzerName
	termFieldMapping.Store = true
	termFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("term", termFieldMapping)

	definitionFieldMapping := bleve.NewTextFieldMapping()
	definitionFieldMapping.Analyzer = ru.AnalyzerName
	definitionFieldMapping.Store = true
	definitionFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("definition", definitionFieldMapping)

	etymologyFieldMapping := bleve.NewTextFieldMapping()
	etymologyFieldMapping.Analyzer = ru.AnalyzerName
	etymologyFieldMapping.Store = true
	etymologyFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("etymology", etymologyFieldMapping)

	categoryFieldMapping := bleve.NewTextFieldMapping()
	categoryFieldMapping.Analyzer = ru.AnalyzerName
	categoryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("category", categoryFieldMapping)

	// Examples - searchable, not stored
	examplesFieldMapping := bleve.NewTextFieldMapping()
	examplesFieldMapping.Analyzer = ru.AnalyzerName
	examplesFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("examples", examplesFieldMapping)

	// --- Keyword fields ---

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	genreFieldMapping := bleve.NewTextFieldMapping()
	genreFieldMapping.Analyzer = keyword.Name
	genreFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("genre", genreFieldMapping)

	letterFieldMapping := bleve.NewTextFieldMapping()
	letterFieldMapping.Analyzer = keyword.Name
	letterFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("letter", letterFieldMapping)

	// --- Numeric fields ---

	positionFieldMapping := bleve.NewNumericFieldMapping()
	positionFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("position", positionFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
