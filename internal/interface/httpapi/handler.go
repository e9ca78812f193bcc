package httpapi

import (
	"context"
	"errors"
	"net/http"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"
	"lounge-advisor-service/internal/usecase"
	"lounge-advisor-service/pkg/logger"
	"lounge-advisor-service/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// AdviceService is what the handler needs from the engine.
type AdviceService interface {
	RecommendForFlight(ctx context.Context, q repository.ScheduleQuery, userID string, prefs entity.Preferences, guestPassEligible bool) (*usecase.RecommendationResult, error)
	AnalyzeLayover(ctx context.Context, legs []repository.ScheduleQuery, userID string, prefs entity.Preferences, guestPassEligible bool) (*usecase.LayoverResult, error)
	SearchFlights(ctx context.Context, q repository.OfferQuery, userID, optimizeFor string) (*usecase.SearchResult, error)
}

// Handler serves the advice endpoint.
type Handler struct {
	advisor AdviceService
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewHandler creates the advice handler
func NewHandler(advisor AdviceService, log logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{advisor: advisor, logger: log, metrics: m}
}

// HandleAdvice dispatches on the request kind.
func (h *Handler) HandleAdvice(c *gin.Context) {
	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperr.Wrap(apperr.Validation, "httpapi.HandleAdvice", "request body is not valid JSON", err))
		return
	}

	switch req.Kind {
	case KindFlightRecommendation:
		h.handleRecommendation(c, req)
	case KindLayoverAnalysis:
		h.handleLayover(c, req)
	case KindFlightSearch:
		h.handleSearch(c, req)
	default:
		h.writeError(c, apperr.New(apperr.Validation, "httpapi.HandleAdvice",
			"kind must be one of flight_recommendation, layover_analysis, flight_search"))
	}
}

func (h *Handler) handleRecommendation(c *gin.Context, req AdviceRequest) {
	const op = "httpapi.handleRecommendation"
	if len(req.Legs) != 1 {
		h.writeError(c, apperr.New(apperr.Validation, op, "flight_recommendation requires exactly one leg"))
		return
	}
	leg := req.Legs[0].normalized()
	if err := validateLeg(op, leg); err != nil {
		h.writeError(c, err)
		return
	}
	if req.UserID == "" {
		h.writeError(c, apperr.New(apperr.Validation, op, "user_id is required"))
		return
	}

	result, err := h.advisor.RecommendForFlight(c.Request.Context(), toScheduleQuery(leg), req.UserID, req.Preferences, req.GuestPass)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleLayover(c *gin.Context, req AdviceRequest) {
	const op = "httpapi.handleLayover"
	if len(req.Legs) < 2 {
		h.writeError(c, apperr.New(apperr.Validation, op, "layover_analysis requires at least two legs"))
		return
	}
	if req.UserID == "" {
		h.writeError(c, apperr.New(apperr.Validation, op, "user_id is required"))
		return
	}
	queries := make([]repository.ScheduleQuery, 0, len(req.Legs))
	for _, leg := range req.Legs {
		leg = leg.normalized()
		if err := validateLeg(op, leg); err != nil {
			h.writeError(c, err)
			return
		}
		queries = append(queries, toScheduleQuery(leg))
	}

	result, err := h.advisor.AnalyzeLayover(c.Request.Context(), queries, req.UserID, req.Preferences, req.GuestPass)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleSearch(c *gin.Context, req AdviceRequest) {
	const op = "httpapi.handleSearch"
	if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
		h.writeError(c, apperr.New(apperr.Validation, op, "origin, destination and departure_date are required"))
		return
	}
	if req.UserID == "" {
		h.writeError(c, apperr.New(apperr.Validation, op, "user_id is required"))
		return
	}

	result, err := h.advisor.SearchFlights(c.Request.Context(), repository.OfferQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
	}, req.UserID, req.OptimizeFor)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func validateLeg(op string, leg LegRequest) error {
	if leg.Carrier == "" || leg.FlightNumber == "" || leg.DepartureDate == "" {
		return apperr.New(apperr.Validation, op, "each leg requires carrier, flight_number and departure_date")
	}
	return nil
}

func toScheduleQuery(leg LegRequest) repository.ScheduleQuery {
	return repository.ScheduleQuery{
		Carrier:           leg.Carrier,
		FlightNumber:      leg.FlightNumber,
		DepartureDate:     leg.DepartureDate,
		OperationalSuffix: leg.OperationalSuffix,
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Only the
// sanitized message of a classified error is exposed; anything
// unclassified is logged and replaced by a generic message.
func (h *Handler) writeError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)

	status := http.StatusInternalServerError
	message := "internal error"

	switch kind {
	case apperr.Validation:
		status = http.StatusBadRequest
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Authentication, apperr.Upstream:
		status = http.StatusBadGateway
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
		if h.metrics != nil {
			h.metrics.ErrorsCount.WithLabelValues(appErr.Op).Inc()
		}
	}

	h.logger.Warn("Request failed",
		"requestId", c.GetString(requestIDKey),
		"status", status,
		"kind", kind.String(),
		"error", err)

	c.JSON(status, ErrorResponse{
		Status: "error",
		Kind:   kind.String(),
		Error:  message,
	})
}
