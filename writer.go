package pagespec

import "context"

// DocumentWriter persists completed analysis output to storage outside the
// database, typically as files on disk.
type DocumentWriter interface {
	// WriteDocument writes the analysis document and returns the path written.
	WriteDocument(ctx context.Context, doc *AnalysisDocument) (path string, err error)

	// WriteContent writes captured page content in markdown form alongside
	// the document and returns the path written.
	WriteContent(ctx context.Context, doc *AnalysisDocument, markdown string) (path string, err error)
}
