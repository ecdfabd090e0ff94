package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagespec"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagespec.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements pagespec.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// CreateAnalysis persists a new analysis. The ID, host, content hash, and
// creation time are assigned here; the caller provides URL and document.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *pagespec.Analysis) error {
	if err := analysis.Validate(); err != nil {
		return err
	}

	doc, err := json.Marshal(analysis.Document)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	analysis.ID = uuid.New().String()
	analysis.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64(doc))
	analysis.CreatedAt = time.Now().UTC()
	if analysis.Host == "" {
		if u, err := url.Parse(analysis.URL); err == nil {
			analysis.Host = u.Host
		}
	}
	if analysis.Title == "" {
		analysis.Title = analysis.Document.Metadata.Title
	}
	if analysis.ElementCount == 0 {
		analysis.ElementCount = analysis.Document.Metadata.ElementCount
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, url, host, title, element_count, content_hash, document, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, analysis.ID, analysis.URL, analysis.Host, analysis.Title, analysis.ElementCount,
		analysis.ContentHash, string(doc), analysis.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAnalysisByID retrieves an analysis by ID.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*pagespec.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, host, title, element_count, content_hash, document, created_at
		FROM analyses
		WHERE id = ?
	`, id)

	analysis, err := scanAnalysis(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pagespec.Errorf(pagespec.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}

	return analysis, nil
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter pagespec.AnalysisFilter) ([]*pagespec.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, host, title, element_count, content_hash, document, created_at FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Host != nil {
		query.WriteString(" AND host = ?")
		args = append(args, *filter.Host)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*pagespec.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagespec.Errorf(pagespec.ENOTFOUND, "analysis not found")
	}

	return nil
}

// scanAnalysis reads one analyses row via the provided Scan function.
func scanAnalysis(scan func(dest ...any) error) (*pagespec.Analysis, error) {
	var analysis pagespec.Analysis
	var doc, createdAt string

	if err := scan(&analysis.ID, &analysis.URL, &analysis.Host, &analysis.Title,
		&analysis.ElementCount, &analysis.ContentHash, &doc, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(doc), &analysis.Document); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	var err error
	analysis.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &analysis, nil
}
