package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/footprint-app/footprint/internal/carbon"
	"github.com/footprint-app/footprint/internal/markdown"
	"github.com/footprint-app/footprint/internal/metrics"
	"github.com/footprint-app/footprint/internal/model"
	"github.com/footprint-app/footprint/internal/repository"
	"github.com/footprint-app/footprint/internal/storage"
	"github.com/google/uuid"
)

// ReportSummary is the fixed one-line summary stored with every report.
func ReportSummary(userID string, totalKg float64) string {
	return fmt.Sprintf("Total emissions for user %s: %s kg CO2e", userID, FormatKg(totalKg))
}

type ReportService struct {
	repo       repository.ReportRepository
	aggregator *carbon.Aggregator
	archive    storage.Archive
	parser     *markdown.Parser
	now        func() time.Time
}

// NewReportService creates the service. archive may be nil, in which case
// documents are rebuilt from the stored summary instead of archived.
func NewReportService(
	repo repository.ReportRepository,
	aggregator *carbon.Aggregator,
	archive storage.Archive,
	parser *markdown.Parser,
) *ReportService {
	return &ReportService{
		repo:       repo,
		aggregator: aggregator,
		archive:    archive,
		parser:     parser,
		now:        time.Now,
	}
}

// Generate snapshots the user's current emissions into an immutable report.
// When an archive is configured the rendered document is uploaded first; an
// upload failure aborts generation and nothing is stored.
func (s *ReportService) Generate(ctx context.Context, userID string) (*model.Report, error) {
	total, err := s.aggregator.Total(userID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.aggregator.Breakdown(userID)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		ID:          uuid.New().String(),
		UserID:      userID,
		Summary:     ReportSummary(userID, total),
		GeneratedAt: s.now().UTC(),
	}

	if s.archive != nil {
		key := storage.ReportKey(userID, report.ID)
		doc := renderReportDocument(report, total, breakdown)
		if err := s.archive.Put(ctx, key, doc); err != nil {
			return nil, fmt.Errorf("failed to archive report: %w", err)
		}
		report.ArchiveKey = key
	}

	err = s.repo.Create(report)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	metrics.RecordReportGenerated(report.ArchiveKey != "")
	slog.Info("report generated", "user_id", userID, "report_id", report.ID, "archived", report.ArchiveKey != "")
	return report, nil
}

func (s *ReportService) ByID(userID, reportID string) (*model.Report, error) {
	return s.repo.ByID(userID, reportID)
}

func (s *ReportService) Reports(userID string) ([]*model.Report, error) {
	return s.repo.Reports(userID)
}

// Document returns the report's Markdown. The archived copy is preferred;
// without one the document is rebuilt from the stored summary only, since
// the breakdown at generation time was not persisted.
func (s *ReportService) Document(ctx context.Context, userID, reportID string) ([]byte, error) {
	report, err := s.repo.ByID(userID, reportID)
	if err != nil {
		return nil, err
	}

	if report.ArchiveKey != "" && s.archive != nil {
		doc, err := s.archive.Get(ctx, report.ArchiveKey)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("failed to fetch archived report: %w", err)
		}
		slog.Warn("archived report missing, rebuilding", "report_id", report.ID, "key", report.ArchiveKey)
	}

	return renderReportDocument(report, 0, nil), nil
}

// HTML renders the report document through the Markdown parser.
func (s *ReportService) HTML(ctx context.Context, userID, reportID string) ([]byte, error) {
	doc, err := s.Document(ctx, userID, reportID)
	if err != nil {
		return nil, err
	}

	html, err := s.parser.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return html, nil
}
