package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "stockbook/internal/errors"
	"stockbook/internal/models"
	"stockbook/internal/pagination"
	"stockbook/internal/services"
	"stockbook/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// --- mock ledger service ---

type mockLedgerService struct {
	recordEventFn  func(input services.EventInput) (*models.Event, error)
	updateEventFn  func(id string, input services.EventInput) (*models.Event, error)
	deleteEventFn  func(id string) error
	getEventByIDFn func(id string) (*models.Event, error)
	listEventsFn   func(page pagination.PageRequest, filter services.EventFilter) (*pagination.PageResponse[models.Event], error)
	summaryFn      func() (*services.InventorySummary, error)
}

func (m *mockLedgerService) RecordEvent(input services.EventInput) (*models.Event, error) {
	if m.recordEventFn != nil {
		return m.recordEventFn(input)
	}
	return &models.Event{}, nil
}

func (m *mockLedgerService) UpdateEvent(id string, input services.EventInput) (*models.Event, error) {
	if m.updateEventFn != nil {
		return m.updateEventFn(id, input)
	}
	return &models.Event{}, nil
}

func (m *mockLedgerService) DeleteEvent(id string) error {
	if m.deleteEventFn != nil {
		return m.deleteEventFn(id)
	}
	return nil
}

func (m *mockLedgerService) GetEventByID(id string) (*models.Event, error) {
	if m.getEventByIDFn != nil {
		return m.getEventByIDFn(id)
	}
	return &models.Event{}, nil
}

func (m *mockLedgerService) ListEvents(page pagination.PageRequest, filter services.EventFilter) (*pagination.PageResponse[models.Event], error) {
	if m.listEventsFn != nil {
		return m.listEventsFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Event{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockLedgerService) Summary() (*services.InventorySummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn()
	}
	return &services.InventorySummary{}, nil
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

func setupEventRouter(handler *EventHandler) *gin.Engine {
	r := gin.New()
	r.POST("/events", handler.CreateEvent)
	r.GET("/events", handler.ListEvents)
	r.GET("/events/:id", handler.GetEvent)
	r.PUT("/events/:id", handler.UpdateEvent)
	r.DELETE("/events/:id", handler.DeleteEvent)
	r.GET("/summary", handler.GetSummary)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body %q: %v", rec.Body.String(), err)
	}
	return result
}

func TestEventHandler_CreateEvent(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockLedgerService{
			recordEventFn: func(input services.EventInput) (*models.Event, error) {
				return &models.Event{
					Base:          models.Base{ID: "ev-1"},
					Kind:          input.Kind,
					Quantity:      input.Quantity,
					UnitPrice:     input.UnitPrice,
					Date:          input.Date,
					WAC:           input.UnitPrice,
					TotalQuantity: input.Quantity,
				}, nil
			},
		}
		r := setupEventRouter(NewEventHandler(svc))

		rec := doRequest(r, "POST", "/events",
			`{"kind":"PURCHASE","quantity":150,"unit_price":2,"date":"2024-01-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		event := result["event"].(map[string]interface{})
		if event["kind"] != "PURCHASE" {
			t.Errorf("expected kind PURCHASE, got %v", event["kind"])
		}
		if event["total_quantity"].(float64) != 150 {
			t.Errorf("expected total_quantity 150, got %v", event["total_quantity"])
		}
	})

	t.Run("returns 400 on missing kind", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockLedgerService{}))

		rec := doRequest(r, "POST", "/events",
			`{"quantity":150,"unit_price":2,"date":"2024-01-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on unknown kind", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockLedgerService{}))

		rec := doRequest(r, "POST", "/events",
			`{"kind":"ADJUSTMENT","quantity":1,"unit_price":2,"date":"2024-01-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockLedgerService{}))

		rec := doRequest(r, "POST", "/events",
			`{"kind":"PURCHASE","quantity":1,"unit_price":2,"date":"01/05/2024"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate date", func(t *testing.T) {
		svc := &mockLedgerService{
			recordEventFn: func(services.EventInput) (*models.Event, error) {
				return nil, apperrors.ErrDuplicateDate
			},
		}
		r := setupEventRouter(NewEventHandler(svc))

		rec := doRequest(r, "POST", "/events",
			`{"kind":"PURCHASE","quantity":1,"unit_price":2,"date":"2024-01-01"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		errObj := result["error"].(map[string]interface{})
		if errObj["code"] != "DUPLICATE_DATE" {
			t.Errorf("expected code DUPLICATE_DATE, got %v", errObj["code"])
		}
	})

	t.Run("insufficient inventory carries shortfall details", func(t *testing.T) {
		svc := &mockLedgerService{
			recordEventFn: func(services.EventInput) (*models.Event, error) {
				return nil, apperrors.WithDetails(apperrors.ErrInsufficientInventory,
					"Cannot sell 200 units: only 155 in stock (short by 45)",
					map[string]any{"shortfall": int64(45)})
			},
		}
		r := setupEventRouter(NewEventHandler(svc))

		rec := doRequest(r, "POST", "/events",
			`{"kind":"SALE","quantity":200,"unit_price":3,"date":"2024-01-10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		errObj := result["error"].(map[string]interface{})
		details := errObj["details"].(map[string]interface{})
		if details["shortfall"].(float64) != 45 {
			t.Errorf("expected shortfall 45, got %v", details["shortfall"])
		}
	})
}

func TestEventHandler_ListEvents(t *testing.T) {
	t.Run("passes kind filter through", func(t *testing.T) {
		var gotFilter services.EventFilter
		svc := &mockLedgerService{
			listEventsFn: func(page pagination.PageRequest, filter services.EventFilter) (*pagination.PageResponse[models.Event], error) {
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Event{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupEventRouter(NewEventHandler(svc))

		rec := doRequest(r, "GET", "/events?kind=SALE", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotFilter.Kind == nil || *gotFilter.Kind != models.EventKindSale {
			t.Errorf("expected SALE filter, got %v", gotFilter.Kind)
		}
	})

	t.Run("rejects unknown kind filter", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockLedgerService{}))
		rec := doRequest(r, "GET", "/events?kind=REFUND", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects oversized page_size", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockLedgerService{}))
		rec := doRequest(r, "GET", "/events?page_size=5000", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestEventHandler_GetEvent(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockLedgerService{
			getEventByIDFn: func(string) (*models.Event, error) {
				return nil, apperrors.ErrEventNotFound
			},
		}
		r := setupEventRouter(NewEventHandler(svc))

		rec := doRequest(r, "GET", "/events/nope", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestEventHandler_UpdateEvent(t *testing.T) {
	t.Run("returns 200 with the revalued event", func(t *testing.T) {
		svc := &mockLedgerService{
			updateEventFn: func(id string, input services.EventInput) (*models.Event, error) {
				return &models.Event{
					Base:     models.Base{ID: id},
					Kind:     input.Kind,
					Quantity: input.Quantity,
					WAC:      decimal.RequireFromString("12"),
				}, nil
			},
		}
		r := setupEventRouter(NewEventHandler(svc))

		rec := doRequest(r, "PUT", "/events/ev-1",
			`{"kind":"PURCHASE","quantity":100,"unit_price":14,"date":"2024-03-05"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		event := result["event"].(map[string]interface{})
		if event["id"] != "ev-1" {
			t.Errorf("expected id ev-1, got %v", event["id"])
		}
	})
}

func TestEventHandler_DeleteEvent(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		r := setupEventRouter(NewEventHandler(&mockLedgerService{}))
		rec := doRequest(r, "DELETE", "/events/ev-1", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockLedgerService{
			deleteEventFn: func(string) error { return apperrors.ErrEventNotFound },
		}
		r := setupEventRouter(NewEventHandler(svc))
		rec := doRequest(r, "DELETE", "/events/nope", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestEventHandler_GetSummary(t *testing.T) {
	svc := &mockLedgerService{
		summaryFn: func() (*services.InventorySummary, error) {
			return &services.InventorySummary{
				WAC:            decimal.RequireFromString("1.97"),
				TotalQuantity:  155,
				InventoryValue: decimal.RequireFromString("305.35"),
			}, nil
		},
	}
	r := setupEventRouter(NewEventHandler(svc))

	rec := doRequest(r, "GET", "/summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	summary := result["summary"].(map[string]interface{})
	if summary["total_quantity"].(float64) != 155 {
		t.Errorf("expected 155 on hand, got %v", summary["total_quantity"])
	}
}
