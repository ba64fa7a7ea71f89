package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"contoso-university/internal/dto"
	"contoso-university/internal/service"
	"contoso-university/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

type mockInstructorService struct {
	confirmResult *dto.DeleteInstructorCommand
	confirmErr    error
	deleteErr     error
	listResult    []dto.InstructorResponse
	listTotal     int64
	listErr       error

	confirmCalls int
	lastQuery    *dto.DeleteInstructorQuery
	lastCommand  *dto.DeleteInstructorCommand
}

func (m *mockInstructorService) GetDeleteConfirmation(_ context.Context, q *dto.DeleteInstructorQuery) (*dto.DeleteInstructorCommand, error) {
	m.confirmCalls++
	m.lastQuery = q
	return m.confirmResult, m.confirmErr
}
func (m *mockInstructorService) Delete(_ context.Context, cmd *dto.DeleteInstructorCommand) error {
	m.lastCommand = cmd
	return m.deleteErr
}
func (m *mockInstructorService) List(_ context.Context, _ *dto.InstructorListRequest) ([]dto.InstructorResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setupInstructorRouter(mock *mockInstructorService) *gin.Engine {
	h := NewInstructorHandler(mock, "/instructors")
	r := gin.New()
	r.GET("/instructors", h.ListInstructors)
	r.GET("/instructors/delete", h.GetDelete)
	r.POST("/instructors/delete", h.PostDelete)
	return r
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func intPtr(v int) *int { return &v }

// ═══════════════════════════════════════════════════════════
// GetDelete Tests
// ═══════════════════════════════════════════════════════════

func TestInstructorHandler_GetDelete_Success(t *testing.T) {
	loc := "Thompson 304"
	mock := &mockInstructorService{
		confirmResult: &dto.DeleteInstructorCommand{
			ID:                       intPtr(5),
			LastName:                 "Kapoor",
			FirstMidName:             "Candace",
			HireDate:                 "2002-07-06",
			OfficeAssignmentLocation: &loc,
		},
	}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors/delete?id=5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastQuery == nil || mock.lastQuery.ID == nil || *mock.lastQuery.ID != 5 {
		t.Errorf("expected query id 5, got %+v", mock.lastQuery)
	}

	var body struct {
		Code int                         `json:"code"`
		Data dto.DeleteInstructorCommand `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Data.LastName != "Kapoor" {
		t.Errorf("expected last_name Kapoor, got %s", body.Data.LastName)
	}
	if body.Data.OfficeAssignmentLocation == nil || *body.Data.OfficeAssignmentLocation != loc {
		t.Errorf("expected location %s", loc)
	}
}

func TestInstructorHandler_GetDelete_MissingID(t *testing.T) {
	mock := &mockInstructorService{}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors/delete", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if mock.confirmCalls != 0 {
		t.Error("service should not be called when id is missing")
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("expected code 10001, got %d", resp.Code)
	}
}

func TestInstructorHandler_GetDelete_EmptyID(t *testing.T) {
	for _, target := range []string{"/instructors/delete?id=", "/instructors/delete?id=%20"} {
		mock := &mockInstructorService{}
		r := setupInstructorRouter(mock)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", target, nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
		if mock.confirmCalls != 0 {
			t.Errorf("%s: service should not be called when id is empty", target)
		}
		if resp := parseResponse(w); resp.Code != 10001 {
			t.Errorf("%s: expected code 10001, got %d", target, resp.Code)
		}
	}
}

func TestInstructorHandler_GetDelete_InvalidID(t *testing.T) {
	mock := &mockInstructorService{}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors/delete?id=abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if mock.confirmCalls != 0 {
		t.Error("service should not be called when id is malformed")
	}
}

func TestInstructorHandler_GetDelete_ServiceRejectsID(t *testing.T) {
	mock := &mockInstructorService{confirmErr: service.ErrInstructorIDRequired}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors/delete?id=1", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestInstructorHandler_GetDelete_NotFoundRendersNull(t *testing.T) {
	mock := &mockInstructorService{}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors/delete?id=404", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":null`) {
		t.Errorf("expected null data, got %s", w.Body.String())
	}
}

func TestInstructorHandler_GetDelete_ServiceError(t *testing.T) {
	mock := &mockInstructorService{confirmErr: errors.New("db down")}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors/delete?id=5", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PostDelete Tests
// ═══════════════════════════════════════════════════════════

func TestInstructorHandler_PostDelete_JSON(t *testing.T) {
	mock := &mockInstructorService{}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/instructors/delete",
		strings.NewReader(`{"id":5,"last_name":"Kapoor","first_mid_name":"Candace"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastCommand == nil || mock.lastCommand.ID == nil || *mock.lastCommand.ID != 5 {
		t.Errorf("expected command id 5, got %+v", mock.lastCommand)
	}

	var body struct {
		Code int               `json:"code"`
		Data response.Redirect `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Data.Redirect != "/instructors" {
		t.Errorf("expected redirect /instructors, got %q", body.Data.Redirect)
	}
}

func TestInstructorHandler_PostDelete_Form(t *testing.T) {
	mock := &mockInstructorService{}
	r := setupInstructorRouter(mock)

	form := url.Values{}
	form.Set("id", "5")
	form.Set("last_name", "Kapoor")
	form.Set("hire_date", "2002-07-06")
	form.Set("office_assignment_location", "Thompson 304")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/instructors/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cmd := mock.lastCommand
	if cmd == nil || cmd.ID == nil || *cmd.ID != 5 {
		t.Fatalf("expected command id 5, got %+v", cmd)
	}
	if cmd.HireDate != "2002-07-06" {
		t.Errorf("expected hire_date 2002-07-06, got %v", cmd.HireDate)
	}
}

// 确认页拿到的数据原样提交回来，必须能完成删除
func TestInstructorHandler_PostDelete_EchoesConfirmation(t *testing.T) {
	loc := "Thompson 304"
	mock := &mockInstructorService{
		confirmResult: &dto.DeleteInstructorCommand{
			ID:                       intPtr(5),
			LastName:                 "Kapoor",
			FirstMidName:             "Candace",
			HireDate:                 "2004-02-12",
			OfficeAssignmentLocation: &loc,
		},
	}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors/delete?id=5", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET: expected 200, got %d", w.Code)
	}

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(body.Data, &fields); err != nil {
		t.Fatalf("invalid data: %v", err)
	}

	form := url.Values{}
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			form.Set(k, val)
		case float64:
			form.Set(k, strconv.FormatFloat(val, 'f', -1, 64))
		}
	}

	t.Run("form", func(t *testing.T) {
		mock.lastCommand = nil
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/instructors/delete", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if mock.lastCommand == nil || mock.lastCommand.ID == nil || *mock.lastCommand.ID != 5 {
			t.Errorf("expected command id 5, got %+v", mock.lastCommand)
		}
	})

	t.Run("json", func(t *testing.T) {
		mock.lastCommand = nil
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/instructors/delete", strings.NewReader(string(body.Data)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if mock.lastCommand == nil || mock.lastCommand.HireDate != "2004-02-12" {
			t.Errorf("expected hire_date echoed, got %+v", mock.lastCommand)
		}
	})
}

func TestInstructorHandler_PostDelete_UnparsedEchoDoesNotBlock(t *testing.T) {
	mock := &mockInstructorService{}
	r := setupInstructorRouter(mock)

	form := url.Values{}
	form.Set("id", "5")
	form.Set("hire_date", "2004-02-12T00:00:00Z")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/instructors/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.lastCommand == nil || *mock.lastCommand.ID != 5 {
		t.Errorf("expected command id 5, got %+v", mock.lastCommand)
	}
}

func TestInstructorHandler_PostDelete_BadJSON(t *testing.T) {
	mock := &mockInstructorService{}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/instructors/delete", strings.NewReader("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if mock.lastCommand != nil {
		t.Error("service should not be called on malformed body")
	}
}

func TestInstructorHandler_PostDelete_NotFoundIsFatal(t *testing.T) {
	for _, svcErr := range []error{service.ErrInstructorNotFound, service.ErrInstructorAmbiguous} {
		mock := &mockInstructorService{deleteErr: svcErr}
		r := setupInstructorRouter(mock)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/instructors/delete", strings.NewReader(`{"id":5}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("%v: expected 500, got %d", svcErr, w.Code)
		}
		if resp := parseResponse(w); resp.Code != 50000 {
			t.Errorf("%v: expected code 50000, got %d", svcErr, resp.Code)
		}
	}
}

// ═══════════════════════════════════════════════════════════
// ListInstructors Tests
// ═══════════════════════════════════════════════════════════

func TestInstructorHandler_ListInstructors(t *testing.T) {
	mock := &mockInstructorService{
		listResult: []dto.InstructorResponse{{ID: 1, LastName: "Abercrombie"}},
		listTotal:  21,
	}
	r := setupInstructorRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors?page=2&page_size=10", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Data response.PageData `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	p := body.Data.Pagination
	if p.Page != 2 || p.PageSize != 10 || p.Total != 21 || p.TotalPages != 3 {
		t.Errorf("unexpected pagination: %+v", p)
	}
}

func TestInstructorHandler_ListInstructors_BadPageSize(t *testing.T) {
	r := setupInstructorRouter(&mockInstructorService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/instructors?page_size=1000", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
