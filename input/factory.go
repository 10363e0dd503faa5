package input

import (
	"path/filepath"
	"strings"
)

// Factory selects a Reader for a source location by file extension.
type Factory struct {
	defaultReader Reader
	byExtension   map[string]Reader
}

// NewFactory creates a Factory with the built-in readers registered. Unknown
// extensions fall back to the passthrough text reader.
func NewFactory() *Factory {
	f := &Factory{
		defaultReader: NewTextReader(),
		byExtension:   make(map[string]Reader),
	}
	f.Register(".csv", NewTextReader())
	f.Register(".txt", NewTextReader())
	f.Register(".xlsx", NewExcelReader())
	f.Register(".xlsm", NewExcelReader())
	f.Register(".xls", NewXLSReader())
	return f
}

// Register binds a custom reader to a file extension.
func (f *Factory) Register(ext string, reader Reader) {
	f.byExtension[strings.ToLower(ext)] = reader
}

// GetReader returns the reader registered for the location's extension.
func (f *Factory) GetReader(location string) Reader {
	ext := strings.ToLower(filepath.Ext(location))
	if reader, ok := f.byExtension[ext]; ok {
		return reader
	}
	return f.defaultReader
}
