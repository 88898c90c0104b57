package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcomply/compliance-checker-api/internal/models"
	"github.com/evcomply/compliance-checker-api/internal/utils"
)

type stubService struct {
	uploadResp *models.UploadResponse
	uploadErr  error
	lookupResp *models.ComponentLookupResponse
	lookupErr  error
}

func (s *stubService) UploadReport(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error) {
	return s.uploadResp, s.uploadErr
}

func (s *stubService) GetReport(ctx context.Context, id string) (*models.Report, error) {
	return nil, utils.NewNotFoundError("Report not found")
}

func (s *stubService) VerifyReport(ctx context.Context, id string) (*models.VerifyResponse, error) {
	return &models.VerifyResponse{ID: id, Compliant: true, Issues: []models.Issue{}}, nil
}

func (s *stubService) GenerateRequirements(ctx context.Context, testCases []string) ([]models.Requirement, error) {
	if len(testCases) == 0 {
		return nil, utils.NewBadRequestError("At least one test case is required")
	}
	return []models.Requirement{{TestCase: testCases[0], RequirementID: "REQ_001"}}, nil
}

func (s *stubService) ExportRequirements(ctx context.Context, testCases []string) ([]byte, error) {
	return []byte("workbook"), nil
}

func (s *stubService) LookupComponent(ctx context.Context, partNumber string) (*models.ComponentLookupResponse, error) {
	return s.lookupResp, s.lookupErr
}

func (s *stubService) AddComponent(ctx context.Context, component *models.ProjectComponent) (*models.ProjectComponent, error) {
	return component, nil
}

func (s *stubService) ListComponents(ctx context.Context) ([]models.ProjectComponent, error) {
	return []models.ProjectComponent{}, nil
}

func (s *stubService) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	return &models.DashboardResponse{}, nil
}

func newTestHandler(svc *stubService) *ReportHandler {
	return NewReportHandler(svc, utils.NewLogger("error"))
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadReport(t *testing.T) {
	svc := &stubService{uploadResp: &models.UploadResponse{
		ID:       "abc",
		Filename: "report.txt",
		Records:  []models.TestRecord{{Name: "IP Rating", Result: "PASS"}},
	}}
	handler := newTestHandler(svc)

	body, contentType := multipartBody(t, "file", "report.txt", []byte("IP Rating Test\nResult: PASS\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	handler.UploadReport(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.ID)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "IP Rating", resp.Records[0].Name)
}

func TestUploadReportRejectsUnsupportedType(t *testing.T) {
	handler := newTestHandler(&stubService{})

	body, contentType := multipartBody(t, "file", "archive.tar.gz", []byte("binary"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	handler.UploadReport(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadReportMissingFile(t *testing.T) {
	handler := newTestHandler(&stubService{})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rr := httptest.NewRecorder()

	handler.UploadReport(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadReportUnreadableDocument(t *testing.T) {
	svc := &stubService{uploadErr: utils.NewUnprocessableError("Could not read the report")}
	handler := newTestHandler(svc)

	body, contentType := multipartBody(t, "file", "broken.pdf", []byte("garbage"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	handler.UploadReport(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestLookupComponentNotFound(t *testing.T) {
	svc := &stubService{lookupErr: utils.NewNotFoundError("Component not found in the internal database")}
	handler := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/components/xyz", nil)
	req = mux.SetURLVars(req, map[string]string{"part": "xyz"})
	rr := httptest.NewRecorder()

	handler.LookupComponent(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGenerateRequirementsBadJSON(t *testing.T) {
	handler := newTestHandler(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requirements/generate", strings.NewReader("{"))
	rr := httptest.NewRecorder()

	handler.GenerateRequirements(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDetermineContentType(t *testing.T) {
	cases := []struct {
		filename string
		header   string
		want     string
	}{
		{"report.pdf", "application/octet-stream", "application/pdf"},
		{"report.docx", "", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"report.xlsx", "", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"report.xls", "", "application/vnd.ms-excel"},
		{"report.txt", "", "text/plain"},
		{"report.bin", "application/x-custom", "application/x-custom"},
	}

	for _, tc := range cases {
		got := determineContentType(tc.filename, tc.header)
		assert.Equal(t, tc.want, got, "filename %s", tc.filename)
	}
}
