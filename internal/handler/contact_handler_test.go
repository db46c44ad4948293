package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/michellealmonte/marketing-api/internal/entity"
	"github.com/michellealmonte/marketing-api/internal/service"
)

func newContactHandler(repo *stubContactsRepo) *ContactHandler {
	return NewContactHandler(service.NewContactsService(repo, nil))
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func validContactBody() string {
	return `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "555-123-4567",
		"service_interest": "color_analysis",
		"consultation_type": "virtual",
		"budget_range": "500_1000",
		"message": "Looking for help"
	}`
}

func TestContactHandler_Submit(t *testing.T) {
	e := echo.New()
	repo := &stubContactsRepo{}
	h := newContactHandler(repo)

	c, rec := postJSON(e, "/api/contact", validContactBody())
	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID    int64  `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || payload.Data.Name != "Jane Doe" || payload.Data.Email != "jane@example.com" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Data.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if repo.created == nil {
		t.Fatalf("expected repository insert")
	}
}

func TestContactHandler_SubmitValidation(t *testing.T) {
	e := echo.New()
	repo := &stubContactsRepo{}
	h := newContactHandler(repo)

	c, rec := postJSON(e, "/api/contact", `{"name":"J","email":"jane@example.com","service_interest":"color_analysis","consultation_type":"virtual","budget_range":"500_1000"}`)
	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Success || !strings.Contains(payload.Message, "name") {
		t.Fatalf("expected field-level message, got %+v", payload)
	}
	if repo.created != nil {
		t.Fatalf("store must stay untouched on validation failure")
	}
}

func TestContactHandler_SubmitStoreError(t *testing.T) {
	e := echo.New()
	repo := &stubContactsRepo{createErr: errors.New("connection refused")}
	h := newContactHandler(repo)

	c, rec := postJSON(e, "/api/contact", validContactBody())
	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("internal error detail leaked: %s", rec.Body.String())
	}
}

func TestContactHandler_List(t *testing.T) {
	e := echo.New()
	repo := &stubContactsRepo{contacts: []entity.ContactSubmission{
		{ID: 2, Name: "Recent", Email: "recent@example.com", CreatedAt: time.Now(), Status: entity.ContactStatusNew},
		{ID: 1, Name: "Older", Email: "older@example.com", CreatedAt: time.Now().Add(-time.Hour), Status: entity.ContactStatusContacted},
	}}
	h := newContactHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Success bool                       `json:"success"`
		Data    []entity.ContactSubmission `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data) != 2 || payload.Data[0].Name != "Recent" {
		t.Fatalf("unexpected data: %+v", payload.Data)
	}
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	e := echo.New()

	newContext := func(h *ContactHandler, id, body string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodPut, "/api/contact/"+id+"/status", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/contact/:id/status")
		c.SetParamNames("id")
		c.SetParamValues(id)
		return rec, h.UpdateStatus(c)
	}

	t.Run("success", func(t *testing.T) {
		repo := &stubContactsRepo{affected: true, contact: &entity.ContactSubmission{ID: 5, Name: "Jane Doe", Status: entity.ContactStatusNew}}
		rec, err := newContext(newContactHandler(repo), "5", `{"status":"contacted"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if repo.contact.Status != entity.ContactStatusContacted {
			t.Fatalf("expected status applied, got %q", repo.contact.Status)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		rec, err := newContext(newContactHandler(&stubContactsRepo{}), "abc", `{"status":"contacted"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		rec, err := newContext(newContactHandler(&stubContactsRepo{affected: true}), "5", `{"status":"archived"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown submission", func(t *testing.T) {
		rec, err := newContext(newContactHandler(&stubContactsRepo{affected: false}), "99", `{"status":"contacted"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
