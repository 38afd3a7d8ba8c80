package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	domainerr "github.com/dlevina/prediction-billing/internal/domain/error"
	classifierport "github.com/dlevina/prediction-billing/internal/domain/port/classifier"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/dto"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/api/middleware"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/queue"
)

// JobPublisher enqueues prediction jobs for asynchronous processing
type JobPublisher interface {
	Publish(ctx context.Context, payload *queue.JobPayload) error
}

// PredictionHandler handles model and prediction HTTP requests
type PredictionHandler struct {
	billingUseCase usecase.BillingUseCase
	model          classifierport.Classifier
	publisher      JobPublisher
	idGen          coreport.IDGenerator
	logger         coreport.Logger
}

// NewPredictionHandler creates a new prediction handler instance.
// publisher may be nil when asynchronous submission is disabled.
func NewPredictionHandler(
	billingUseCase usecase.BillingUseCase,
	model classifierport.Classifier,
	publisher JobPublisher,
	idGen coreport.IDGenerator,
	logger coreport.Logger,
) *PredictionHandler {
	return &PredictionHandler{
		billingUseCase: billingUseCase,
		model:          model,
		publisher:      publisher,
		idGen:          idGen,
		logger:         logger,
	}
}

// ModelInfo handles GET /api/models
func (h *PredictionHandler) ModelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ModelInfoResponse{
		Name:   h.model.Name(),
		Cost:   entity.AmountInCentsToString(h.model.CostInCents()),
		Labels: h.model.Labels(),
	})
}

// Predict handles POST /api/models/predict. The call is billed
// synchronously: the caller is charged and receives the labels in one
// round trip.
func (h *PredictionHandler) Predict(c *gin.Context) {
	req, ok := h.bindPredictRequest(c)
	if !ok {
		return
	}

	result, err := h.billingUseCase.Predict(c.Request.Context(), usecase.PredictRequest{
		JobID:   req.JobID,
		UserID:  middleware.AuthenticatedUserID(c),
		Samples: toSamples(req.Samples),
	})
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusOK, toPredictResponse(result))
}

// Enqueue handles POST /api/models/predict/async. The job is published
// to the queue and billed by the worker; the caller polls the result
// endpoint with the returned job ID.
func (h *PredictionHandler) Enqueue(c *gin.Context) {
	if h.publisher == nil {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Asynchronous processing is not available",
		})
		return
	}

	req, ok := h.bindPredictRequest(c)
	if !ok {
		return
	}

	jobID := req.JobID
	if jobID == "" {
		jobID = h.idGen.NewID()
	}

	payload := &queue.JobPayload{
		JobID:   jobID,
		UserID:  middleware.AuthenticatedUserID(c),
		Samples: toSamples(req.Samples),
	}
	if err := h.publisher.Publish(c.Request.Context(), payload); err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	c.JSON(http.StatusAccepted, dto.EnqueueResponse{
		JobID:  jobID,
		Status: "queued",
	})
}

// GetResult handles GET /api/models/predict/:jobId
func (h *PredictionHandler) GetResult(c *gin.Context) {
	jobID := c.Param("jobId")

	result, err := h.billingUseCase.GetResult(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	// Hide other users' jobs rather than confirming they exist
	if result.UserID != middleware.AuthenticatedUserID(c) && !middleware.IsAdmin(c) {
		respondError(c, h.logger, domainerr.ErrPredictionNotFound, "")
		return
	}

	c.JSON(http.StatusOK, toPredictResponse(result))
}

// ListResults handles GET /api/models/predictions. The list is scoped
// to the caller's own predictions; admins may pass a userId query
// parameter to read another user's history.
func (h *PredictionHandler) ListResults(c *gin.Context) {
	userID := middleware.AuthenticatedUserID(c)
	if raw := c.Query("userId"); raw != "" {
		requested, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || requested == 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
				Message: "Invalid user ID format",
			})
			return
		}
		if requested != userID && !middleware.IsAdmin(c) {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Cannot access another user's predictions",
			})
			return
		}
		userID = requested
	}

	results, err := h.billingUseCase.ListResults(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	items := make([]dto.PredictionHistoryItem, 0, len(results))
	for _, result := range results {
		items = append(items, dto.PredictionHistoryItem{
			JobID:       result.JobID,
			Predictions: result.Predictions,
			Cost:        result.Cost,
			CreatedAt:   dto.FormatTime(result.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, dto.PredictionListResponse{
		UserID:      userID,
		Predictions: items,
	})
}

// bindPredictRequest parses and validates the shared prediction payload
func (h *PredictionHandler) bindPredictRequest(c *gin.Context) (dto.PredictRequest, bool) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request body",
		})
		return req, false
	}
	if len(req.Samples) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "At least one sample is required",
		})
		return req, false
	}
	return req, true
}

// toSamples converts request samples to classifier input
func toSamples(samples []dto.SampleRequest) []classifierport.Sample {
	converted := make([]classifierport.Sample, len(samples))
	for i, s := range samples {
		converted[i] = classifierport.Sample{
			PetalLength: s.PetalLength,
			PetalWidth:  s.PetalWidth,
		}
	}
	return converted
}

// toPredictResponse converts a billed prediction outcome to its API form
func toPredictResponse(result *usecase.PredictResult) dto.PredictResponse {
	return dto.PredictResponse{
		JobID:         result.JobID,
		Predictions:   result.Predictions,
		Cost:          result.Cost,
		ResultBalance: result.ResultBalance,
		Replayed:      result.Replayed,
	}
}
