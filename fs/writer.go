// Package fs provides file-based storage for analysis output.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagespec"
)

// Ensure Writer implements pagespec.DocumentWriter at compile time.
var _ pagespec.DocumentWriter = (*Writer)(nil)

// Writer writes analysis documents as JSON files to a directory. File names
// are derived from the analyzed host and the analysis timestamp, so repeated
// runs against the same page never overwrite each other.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// DocumentPath returns the file name for a document, without the directory.
// Example: https://www.example.com at 2026-08-29T10:15:00Z →
// www_example_com_2026-08-29T10-15-00Z.json
func DocumentPath(doc *pagespec.AnalysisDocument) (string, error) {
	u, err := url.Parse(doc.Metadata.URL)
	if err != nil {
		return "", pagespec.Errorf(pagespec.EINVALID, "invalid document URL: %v", err)
	}
	host := u.Host
	if host == "" {
		host = "page"
	}
	return sanitizeHost(host) + "_" + sanitizeTimestamp(doc.Metadata.Timestamp) + ".json", nil
}

// WriteDocument writes the document as indented JSON and returns the path.
// The file is written to a temporary name first and renamed into place.
func (w *Writer) WriteDocument(ctx context.Context, doc *pagespec.AnalysisDocument) (string, error) {
	name, err := DocumentPath(doc)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, name)
	if err := w.writeAtomic(path, append(data, '\n')); err != nil {
		return "", err
	}
	return path, nil
}

// WriteContent writes captured markdown next to the document file, with the
// same stem and an .md extension.
func (w *Writer) WriteContent(ctx context.Context, doc *pagespec.AnalysisDocument, markdown string) (string, error) {
	name, err := DocumentPath(doc)
	if err != nil {
		return "", err
	}
	name = strings.TrimSuffix(name, ".json") + ".md"

	path := filepath.Join(w.baseDir, name)
	if err := w.writeAtomic(path, []byte(markdown)); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// sanitizeHost replaces every non-alphanumeric character with an underscore.
func sanitizeHost(host string) string {
	var b strings.Builder
	for _, r := range host {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// sanitizeTimestamp makes an RFC 3339 timestamp filename-safe by replacing
// colons and dots with hyphens.
func sanitizeTimestamp(ts string) string {
	ts = strings.ReplaceAll(ts, ":", "-")
	return strings.ReplaceAll(ts, ".", "-")
}
