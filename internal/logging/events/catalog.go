package events

import "grossview/viewer/internal/logging"

type CatalogTracer struct{}

type ExportTracer struct{}

var (
	Catalog = CatalogTracer{}
	Export  = ExportTracer{}
)

func (CatalogTracer) Loaded(source string, categories int) {
	logging.Trace("catalog.loaded", map[string]interface{}{
		"source":     source,
		"categories": categories,
	})
}

func (ExportTracer) Written(path string, bytes int) {
	logging.Trace("export.written", map[string]interface{}{"path": path, "bytes": bytes})
}
