package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/voicedesk/transcription-review/errors"
	dto "github.com/voicedesk/transcription-review/internal/adapter/dto/review"
	"github.com/voicedesk/transcription-review/internal/domain/entities"
	"github.com/voicedesk/transcription-review/internal/usecase/review"
)

// Review handles the JSON mutation endpoints of the dashboard
type Review struct {
	svc    review.Service
	logger *zap.Logger
}

// NewReview creates a new review handler
func NewReview(svc review.Service, logger *zap.Logger) *Review {
	return &Review{svc: svc, logger: logger}
}

// UpdateStatus changes the status of one record.
// Body: {id, status}; both fields are required and status must be one
// of unresolved, in_progress, resolved. An id matching no row still
// returns success: the update affects zero rows and the endpoint does
// not report affected-row counts.
func (h *Review) UpdateStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing id or status"))
	}

	if err := h.svc.UpdateStatus(c.Request().Context(), req.ID, entities.Status(req.Status)); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}

// Resolve marks one record resolved on the legacy table.
// Body: {id}. Same success and error shape as UpdateStatus.
func (h *Review) Resolve(c echo.Context) error {
	var req dto.ResolveRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing id"))
	}

	if err := h.svc.Resolve(c.Request().Context(), req.ID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}
