package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// PDFGenerator renders health summaries as PDF documents
type PDFGenerator struct {
	logger *zap.Logger
}

// NewPDFGenerator creates a new PDFGenerator
func NewPDFGenerator(logger *zap.Logger) *PDFGenerator {
	return &PDFGenerator{
		logger: logger,
	}
}

// ReportData contains all data needed for report generation
type ReportData struct {
	Profile     model.UserProfile
	HealthScore int
	RecentLogs  []model.DailyLog
	TotalLogs   int
	GeneratedAt time.Time
}

var logColumns = []struct {
	title string
	width float64
}{
	{"Date", 28},
	{"Steps", 22},
	{"Sleep (h)", 22},
	{"Water (L)", 22},
	{"Mood", 24},
	{"Diet", 52},
}

// Generate creates a PDF report from the provided data
func (g *PDFGenerator) Generate(data *ReportData) ([]byte, error) {
	g.logger.Info("generating PDF report",
		zap.Int("recent_logs", len(data.RecentLogs)),
		zap.Int("health_score", data.HealthScore),
	)

	// Create new PDF
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	g.addTitle(pdf, tr, data)
	g.addProfile(pdf, tr, data.Profile)
	g.addScore(pdf, data.HealthScore)
	g.addLogTable(pdf, tr, data.RecentLogs, data.TotalLogs)
	g.addMedicalSummary(pdf, tr, data.Profile.MedicalHistorySummary)

	// Generate PDF bytes
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.logger.Error("failed to generate PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	g.logger.Info("PDF report generated successfully",
		zap.Int("size_bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

// addTitle adds the report title and header information
func (g *PDFGenerator) addTitle(pdf *gofpdf.Fpdf, tr func(string) string, data *ReportData) {
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, "Wellness Summary", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Name: %s", data.Profile.Name)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", data.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(8)
}

// addSectionHeader adds a section header
func (g *PDFGenerator) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

func (g *PDFGenerator) addProfile(pdf *gofpdf.Fpdf, tr func(string) string, p model.UserProfile) {
	g.addSectionHeader(pdf, "Profile")

	lang := model.LanguageName(p.Language)
	if lang == "" {
		lang = p.Language
	}

	pdf.CellFormat(0, 6, fmt.Sprintf("Age: %d   Gender: %s", p.Age, p.Gender), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Height: %s cm   Weight: %s kg", num(p.Height), num(p.Weight)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Lifestyle: %s", p.Lifestyle), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Language: %s", lang)), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

func (g *PDFGenerator) addScore(pdf *gofpdf.Fpdf, score int) {
	g.addSectionHeader(pdf, "Health Score")

	if score == 0 {
		pdf.CellFormat(0, 8, "No daily logs recorded yet.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%d / 100", score), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Derived from the most recent daily log.", "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

// addLogTable lists the most recent logs, oldest first
func (g *PDFGenerator) addLogTable(pdf *gofpdf.Fpdf, tr func(string) string, logs []model.DailyLog, total int) {
	g.addSectionHeader(pdf, "Recent Daily Logs")

	if len(logs) == 0 {
		pdf.CellFormat(0, 8, "No daily logs recorded.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFont("Arial", "B", 10)
	for _, col := range logColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, l := range logs {
		cells := []string{l.Date, strconv.Itoa(l.Steps), num(l.Sleep), num(l.Water), string(l.Mood), tr(l.Diet)}
		for i, col := range logColumns {
			pdf.CellFormat(col.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Showing %d of %d logs.", len(logs), total), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	for _, l := range logs {
		if l.Symptoms != nil && *l.Symptoms != "" {
			pdf.CellFormat(0, 5, tr(fmt.Sprintf("%s symptoms: %s", l.Date, *l.Symptoms)), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addMedicalSummary(pdf *gofpdf.Fpdf, tr func(string) string, summary string) {
	g.addSectionHeader(pdf, "Medical History Summary")

	if summary == "" {
		summary = "No medical history recorded."
	}
	pdf.MultiCell(0, 5, tr(summary), "", "L", false)
	pdf.Ln(5)

	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(0, 4, "This summary is informational and is not a medical diagnosis. Please consult a doctor.", "", "L", false)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
