package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	domainerr "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/dto"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	eventUseCase usecase.EventUseCase
	logger       coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(eventUseCase usecase.EventUseCase, logger coreport.Logger) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
		logger:       logger,
	}
}

// Create handles POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return
	}

	event, err := h.eventUseCase.Create(c.Request.Context(), req.Title, req.Details)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusCreated, toEventResponse(event))
}

// Get handles GET /api/events/:eventId
func (h *EventHandler) Get(c *gin.Context) {
	eventID, ok := pathEventID(c)
	if !ok {
		return
	}

	event, err := h.eventUseCase.Get(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusOK, toEventResponse(event))
}

// List handles GET /api/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toEventResponse(event))
	}

	c.JSON(http.StatusOK, responses)
}

// Update handles PUT /api/events/:eventId
func (h *EventHandler) Update(c *gin.Context) {
	eventID, ok := pathEventID(c)
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return
	}

	event, err := h.eventUseCase.Update(c.Request.Context(), eventID, req.Title, req.Details)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusOK, toEventResponse(event))
}

// Delete handles DELETE /api/events/:eventId
func (h *EventHandler) Delete(c *gin.Context) {
	eventID, ok := pathEventID(c)
	if !ok {
		return
	}

	if err := h.eventUseCase.Delete(c.Request.Context(), eventID); err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// pathEventID parses the :eventId path parameter
func pathEventID(c *gin.Context) (uint64, bool) {
	eventID, err := strconv.ParseUint(c.Param("eventId"), 10, 64)
	if err != nil || eventID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid event ID",
		})
		return 0, false
	}
	return eventID, true
}

// toEventResponse converts an event to its API form
func toEventResponse(event *entity.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:        event.ID,
		Title:     event.Title,
		Details:   event.Details,
		CreatedAt: dto.FormatTime(event.CreatedAt),
		UpdatedAt: dto.FormatTime(event.UpdatedAt),
	}
}
