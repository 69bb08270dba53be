package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "stockbook/internal/errors"
	"stockbook/internal/models"
	"stockbook/internal/pagination"
	"stockbook/internal/services"
)

// EventHandler handles ledger event requests.
type EventHandler struct {
	ledgerService services.LedgerServicer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(ledgerService services.LedgerServicer) *EventHandler {
	return &EventHandler{ledgerService: ledgerService}
}

// EventRequest represents the request payload for creating or updating an event.
// Derived fields (wac, total_quantity) are computed server-side and cannot be set.
type EventRequest struct {
	Kind      models.EventKind `json:"kind" binding:"required,event_kind"`
	Quantity  int64            `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Date      string           `json:"date" binding:"required,ledger_date"`
}

func (r *EventRequest) toInput() (services.EventInput, error) {
	date, err := parseLedgerDate(r.Date)
	if err != nil {
		return services.EventInput{}, err
	}
	return services.EventInput{
		Kind:      r.Kind,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
		Date:      date,
	}, nil
}

// CreateEvent records a new purchase or sale in the ledger.
// @Summary     Record a ledger event
// @Description Record a purchase or sale; all later events are revalued and committed atomically
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       request body EventRequest true "Event details"
// @Success     201 {object} models.Event "Event recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient inventory"
// @Failure     409 {object} ErrorResponse "Date already occupied"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.ledgerService.RecordEvent(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// ListEvents returns a paginated list of ledger events, newest first.
// @Summary     List ledger events
// @Description List events in descending date order, optionally filtered by kind
// @Tags        events
// @Produce     json
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Param       kind query string false "Filter by kind" Enums(PURCHASE, SALE)
// @Success     200 {object} pagination.PageResponse[models.Event]
// @Failure     400 {object} ErrorResponse "Invalid query parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.EventFilter
	if kind := c.Query("kind"); kind != "" {
		k := models.EventKind(kind)
		if k != models.EventKindPurchase && k != models.EventKindSale {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be PURCHASE or SALE"))
			return
		}
		filter.Kind = &k
	}

	result, err := h.ledgerService.ListEvents(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEvent returns a single ledger event.
// @Summary     Get a ledger event
// @Tags        events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} models.Event
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.ledgerService.GetEventByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// UpdateEvent replaces an event's raw fields and revalues the ledger.
// @Summary     Update a ledger event
// @Description Replace an event's raw fields; the event and everything after it are revalued
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Param       request body EventRequest true "New event details"
// @Success     200 {object} models.Event "Event updated"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient inventory"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     409 {object} ErrorResponse "Date already occupied"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	event, err := h.ledgerService.UpdateEvent(c.Param("id"), input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// DeleteEvent removes an event and revalues everything after it.
// @Summary     Delete a ledger event
// @Description Remove an event; later events are revalued as if it never existed
// @Tags        events
// @Param       id path string true "Event ID"
// @Success     204 "Event deleted"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.ledgerService.DeleteEvent(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummary reports the current inventory valuation.
// @Summary     Inventory summary
// @Description Current weighted average cost, quantity on hand, and inventory value
// @Tags        summary
// @Produce     json
// @Success     200 {object} services.InventorySummary
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *EventHandler) GetSummary(c *gin.Context) {
	summary, err := h.ledgerService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
