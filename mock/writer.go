package mock

import (
	"context"

	"github.com/fwojciec/pagespec"
)

var _ pagespec.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of pagespec.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *pagespec.AnalysisDocument) (string, error)
	WriteContentFn  func(ctx context.Context, doc *pagespec.AnalysisDocument, markdown string) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *pagespec.AnalysisDocument) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}

func (w *DocumentWriter) WriteContent(ctx context.Context, doc *pagespec.AnalysisDocument, markdown string) (string, error) {
	return w.WriteContentFn(ctx, doc, markdown)
}
