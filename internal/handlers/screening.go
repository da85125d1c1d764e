package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"visa-eligibility-engine/internal/models"
	"visa-eligibility-engine/internal/services/eligibility"
	s3service "visa-eligibility-engine/internal/services/s3"
	"visa-eligibility-engine/internal/utils"
)

// maxReportedErrors caps the parse errors echoed back in a screening result.
const maxReportedErrors = 10

const reportPrefix = "results/"

// ScreeningRow is the outcome for one seeker in a batch.
type ScreeningRow struct {
	Line            int                         `json:"line"`
	SeekerID        string                      `json:"seeker_id"`
	Eligible        int                         `json:"eligible"`
	Primary         []models.VisaRecommendation `json:"primary"`
	Recommendations []models.VisaRecommendation `json:"recommendations"`
}

// ScreeningReport is the outcome of screening a whole intake file.
type ScreeningReport struct {
	BatchID     string         `json:"batch_id"`
	GeneratedAt string         `json:"generated_at"`
	Rows        []ScreeningRow `json:"rows"`
	Failed      int            `json:"failed"`
	Errors      []string       `json:"errors,omitempty"`
}

// ScreenRows evaluates every intake row with the engine.
func ScreenRows(engine *eligibility.Engine, rows []utils.IntakeRow) []ScreeningRow {
	out := make([]ScreeningRow, 0, len(rows))
	for _, row := range rows {
		recs := engine.GenerateRecommendations(row.State)
		primary, _ := eligibility.SplitPrimary(recs, engine.Config().PrimaryResults)
		out = append(out, ScreeningRow{
			Line:            row.Line,
			SeekerID:        row.SeekerID,
			Eligible:        len(recs),
			Primary:         primary,
			Recommendations: recs,
		})
	}
	return out
}

// BuildReport screens rows and attaches the parse errors.
func BuildReport(engine *eligibility.Engine, batchID string, rows []utils.IntakeRow, parseErrors []error) ScreeningReport {
	report := ScreeningReport{
		BatchID:     batchID,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:        ScreenRows(engine, rows),
		Failed:      len(parseErrors),
	}

	for i, err := range parseErrors {
		if i >= maxReportedErrors {
			break
		}
		report.Errors = append(report.Errors, err.Error())
	}

	return report
}

// ScreeningHandler screens intake CSVs uploaded to S3 and writes a JSON report
// next to them under results/.
type ScreeningHandler struct {
	engine *eligibility.Engine
	client s3service.ObjectAPI
}

// NewScreeningHandler creates a screening handler over an S3 client.
func NewScreeningHandler(engine *eligibility.Engine, client s3service.ObjectAPI) *ScreeningHandler {
	return &ScreeningHandler{engine: engine, client: client}
}

// ScreeningResult summarizes one processed upload.
type ScreeningResult struct {
	Message   string   `json:"message"`
	BatchID   string   `json:"batch_id"`
	ReportKey string   `json:"report_key,omitempty"`
	Screened  int      `json:"screened"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// Handle processes S3 events for uploaded intake files.
func (h *ScreeningHandler) Handle(ctx context.Context, s3Event events.S3Event) (ScreeningResult, error) {
	logger := utils.GetLogger()

	if len(s3Event.Records) == 0 {
		return ScreeningResult{Message: "No records to process"}, nil
	}

	record := s3Event.Records[0]
	bucket := record.S3.Bucket.Name
	key, err := url.QueryUnescape(record.S3.Object.Key)
	if err != nil {
		return ScreeningResult{}, fmt.Errorf("failed to decode S3 key: %w", err)
	}

	if strings.HasPrefix(key, reportPrefix) {
		return ScreeningResult{Message: "Skipped report object"}, nil
	}

	logger.Info("Screening intake file",
		utils.String("bucket", bucket),
		utils.String("key", key))

	store := s3service.NewServiceWithClient(h.client, bucket)
	content, err := store.DownloadFile(ctx, key)
	if err != nil {
		return ScreeningResult{}, fmt.Errorf("failed to download intake file: %w", err)
	}

	batchID := uuid.NewString()

	rows, parseErrors := utils.NewCSVParser().ParseIntakes(bytes.NewReader(content))
	report := BuildReport(h.engine, batchID, rows, parseErrors)

	if len(rows) == 0 {
		return ScreeningResult{
			Message: "No intake rows found in file",
			BatchID: batchID,
			Failed:  report.Failed,
			Errors:  report.Errors,
		}, nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return ScreeningResult{}, fmt.Errorf("failed to encode report: %w", err)
	}

	reportKey := ReportKey(key)
	if err := store.UploadFile(ctx, reportKey, data, "application/json"); err != nil {
		return ScreeningResult{}, fmt.Errorf("failed to store report: %w", err)
	}

	logger.Info("Screened intake file",
		utils.String("batchID", batchID),
		utils.Int("screened", len(report.Rows)),
		utils.Int("parseErrors", len(parseErrors)),
		utils.String("report", reportKey))

	return ScreeningResult{
		Message:   "Intake file screened successfully",
		BatchID:   batchID,
		ReportKey: reportKey,
		Screened:  len(report.Rows),
		Failed:    report.Failed,
		Errors:    report.Errors,
	}, nil
}

// ReportKey maps an upload key such as intakes/june.csv to results/june.json.
func ReportKey(key string) string {
	base := path.Base(key)
	base = strings.TrimSuffix(base, path.Ext(base))
	return reportPrefix + base + ".json"
}
