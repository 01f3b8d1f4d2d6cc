package service

import (
	"fmt"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/pdf"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
)

// ReportGeneratorInterface renders report data to a document
type ReportGeneratorInterface interface {
	Generate(data *pdf.ReportData) ([]byte, error)
}

// ReportService exports the dashboard snapshot as a PDF
type ReportService struct {
	store  StateStoreInterface
	pdfGen ReportGeneratorInterface
	now    func() time.Time
	logger *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(store StateStoreInterface, pdfGen ReportGeneratorInterface, logger *zap.Logger) *ReportService {
	return &ReportService{
		store:  store,
		pdfGen: pdfGen,
		now:    time.Now,
		logger: logger,
	}
}

// Report is a rendered document with its suggested file name
type Report struct {
	Filename string
	Content  []byte
}

// Generate renders the profile, score and recent logs of the current state
func (s *ReportService) Generate() (*Report, error) {
	snap := s.store.Snapshot()
	generatedAt := s.now()

	data := &pdf.ReportData{
		Profile:     snap.Profile,
		HealthScore: ScoreLatest(snap),
		RecentLogs:  model.LastLogs(snap.DailyLogs, ChartWindow),
		TotalLogs:   len(snap.DailyLogs),
		GeneratedAt: generatedAt,
	}

	content, err := s.pdfGen.Generate(data)
	if err != nil {
		s.logger.Error("failed to generate health report", zap.Error(err))
		return nil, fmt.Errorf("failed to generate health report: %w", err)
	}

	s.logger.Info("health report generated",
		zap.Int("size_bytes", len(content)),
		zap.Int("log_count", data.TotalLogs),
	)

	return &Report{
		Filename: fmt.Sprintf("health-report-%s.pdf", generatedAt.Format("20060102")),
		Content:  content,
	}, nil
}
