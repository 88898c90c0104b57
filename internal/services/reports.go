package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evcomply/compliance-checker-api/internal/compliance"
	"github.com/evcomply/compliance-checker-api/internal/models"
	"github.com/evcomply/compliance-checker-api/internal/parser"
	"github.com/evcomply/compliance-checker-api/internal/repository"
	"github.com/evcomply/compliance-checker-api/internal/storage"
	"github.com/evcomply/compliance-checker-api/internal/utils"
)

type ReportService interface {
	UploadReport(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error)
	GetReport(ctx context.Context, id string) (*models.Report, error)
	VerifyReport(ctx context.Context, id string) (*models.VerifyResponse, error)
	GenerateRequirements(ctx context.Context, testCases []string) ([]models.Requirement, error)
	ExportRequirements(ctx context.Context, testCases []string) ([]byte, error)
	LookupComponent(ctx context.Context, partNumber string) (*models.ComponentLookupResponse, error)
	AddComponent(ctx context.Context, component *models.ProjectComponent) (*models.ProjectComponent, error)
	ListComponents(ctx context.Context) ([]models.ProjectComponent, error)
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
}

type reportService struct {
	reports    repository.ReportRepository
	components repository.ComponentRepository
	storage    storage.Storage
	engine     *parser.Engine
	compliance *compliance.Service
	logger     *utils.Logger
}

func NewReportService(
	reports repository.ReportRepository,
	components repository.ComponentRepository,
	store storage.Storage,
	engine *parser.Engine,
	checker *compliance.Service,
	logger *utils.Logger,
) ReportService {
	return &reportService{
		reports:    reports,
		components: components,
		storage:    store,
		engine:     engine,
		compliance: checker,
		logger:     logger,
	}
}

func (s *reportService) UploadReport(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error) {
	reportID := utils.GenerateID()

	result, err := s.engine.ParseReport(req.File, req.ContentType)
	if err != nil {
		var openErr *parser.DocumentOpenError
		if errors.As(err, &openErr) {
			s.logger.Warn("Failed to open report document",
				"error", err,
				"content_type", req.ContentType,
				"filename", req.Filename)
			return nil, utils.NewUnprocessableError(fmt.Sprintf("Could not read the report: %v", openErr.Err))
		}
		s.logger.Error("Failed to parse report", "error", err, "filename", req.Filename)
		return nil, utils.NewInternalError("Failed to parse report")
	}

	s3Key := fmt.Sprintf("reports/%s/%s", reportID, req.Filename)
	if err := s.storage.Upload(ctx, s3Key, req.File, req.ContentType); err != nil {
		s.logger.Error("Failed to upload report to S3", "error", err, "s3_key", s3Key)
		return nil, utils.NewInternalError("Failed to store report")
	}

	now := time.Now()
	report := &models.Report{
		ID:          reportID,
		Filename:    req.Filename,
		FileSize:    int64(len(req.File)),
		ContentType: req.ContentType,
		S3Key:       s3Key,
		Records:     result.Records,
		CreatedAt:   now,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		s.logger.Error("Failed to save report to database", "error", err, "report_id", reportID)
		// Attempt to cleanup S3
		_ = s.storage.Delete(ctx, s3Key)
		return nil, utils.NewInternalError("Failed to save report metadata")
	}

	message := "Report uploaded and parsed successfully."
	if result.Empty() {
		message = "Report uploaded, but no recognized tests were found. Check the report's format and content."
	}

	s.logger.Info("Report uploaded",
		"id", reportID,
		"filename", req.Filename,
		"content_type", req.ContentType,
		"records", len(result.Records),
		"rows", len(result.Rows))

	return &models.UploadResponse{
		ID:          reportID,
		Filename:    req.Filename,
		FileSize:    report.FileSize,
		ContentType: req.ContentType,
		Records:     result.Records,
		Rows:        result.Rows,
		CreatedAt:   now,
		Message:     message,
	}, nil
}

func (s *reportService) GetReport(ctx context.Context, id string) (*models.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get report", "error", err, "id", id)
		return nil, utils.NewInternalError("Failed to retrieve report")
	}
	if report == nil {
		return nil, utils.NewNotFoundError("Report not found")
	}

	return report, nil
}

func (s *reportService) VerifyReport(ctx context.Context, id string) (*models.VerifyResponse, error) {
	report, err := s.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	issues := s.compliance.VerifyReport(report.Records)

	now := time.Now()
	if err := s.reports.MarkVerified(ctx, id, now); err != nil {
		s.logger.Error("Failed to mark report verified", "error", err, "id", id)
		return nil, utils.NewInternalError("Failed to record verification")
	}

	s.logger.Info("Report verified", "id", id, "issues", len(issues))

	return &models.VerifyResponse{
		ID:         id,
		Compliant:  len(issues) == 0,
		Issues:     issues,
		VerifiedAt: now,
	}, nil
}

func (s *reportService) GenerateRequirements(ctx context.Context, testCases []string) ([]models.Requirement, error) {
	if len(testCases) == 0 {
		return nil, utils.NewBadRequestError("At least one test case is required")
	}

	reqs := s.compliance.GenerateRequirements(testCases)

	s.logger.Info("Requirements generated", "test_cases", len(testCases), "requirements", len(reqs))

	return reqs, nil
}

func (s *reportService) ExportRequirements(ctx context.Context, testCases []string) ([]byte, error) {
	reqs, err := s.GenerateRequirements(ctx, testCases)
	if err != nil {
		return nil, err
	}

	data, err := s.compliance.ExportRequirementsXLSX(reqs)
	if err != nil {
		s.logger.Error("Failed to export requirements", "error", err)
		return nil, utils.NewInternalError("Failed to export requirements")
	}

	return data, nil
}

func (s *reportService) LookupComponent(ctx context.Context, partNumber string) (*models.ComponentLookupResponse, error) {
	if partNumber == "" {
		return nil, utils.NewBadRequestError("Part number is required")
	}

	info, found := s.compliance.LookupComponent(partNumber)
	if !found {
		return nil, utils.NewNotFoundError("Component not found in the internal database")
	}

	return info, nil
}

func (s *reportService) AddComponent(ctx context.Context, component *models.ProjectComponent) (*models.ProjectComponent, error) {
	if component.PartNumber == "" {
		return nil, utils.NewBadRequestError("Part number is required")
	}

	component.ID = utils.GenerateID()
	component.CreatedAt = time.Now()

	if err := s.components.Create(ctx, component); err != nil {
		s.logger.Error("Failed to save component", "error", err, "part_number", component.PartNumber)
		return nil, utils.NewInternalError("Failed to save component")
	}

	s.logger.Info("Component added", "id", component.ID, "part_number", component.PartNumber)

	return component, nil
}

func (s *reportService) ListComponents(ctx context.Context) ([]models.ProjectComponent, error) {
	components, err := s.components.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list components", "error", err)
		return nil, utils.NewInternalError("Failed to list components")
	}

	return components, nil
}

func (s *reportService) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	parsed, err := s.reports.CountAll(ctx)
	if err != nil {
		s.logger.Error("Failed to count reports", "error", err)
		return nil, utils.NewInternalError("Failed to load dashboard")
	}

	verified, err := s.reports.CountVerified(ctx)
	if err != nil {
		s.logger.Error("Failed to count verified reports", "error", err)
		return nil, utils.NewInternalError("Failed to load dashboard")
	}

	componentCount, err := s.components.Count(ctx)
	if err != nil {
		s.logger.Error("Failed to count components", "error", err)
		return nil, utils.NewInternalError("Failed to load dashboard")
	}

	return &models.DashboardResponse{
		ReportsVerified: verified,
		ReportsParsed:   parsed,
		ComponentsInDB:  componentCount,
	}, nil
}
