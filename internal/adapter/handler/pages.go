package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "github.com/voicedesk/transcription-review/internal/adapter/dto/review"
	"github.com/voicedesk/transcription-review/internal/adapter/presenter"
	"github.com/voicedesk/transcription-review/internal/domain/entities"
	"github.com/voicedesk/transcription-review/internal/usecase/review"
)

// Pages serves the HTML surface: the landing page and the dashboard
type Pages struct {
	svc    review.Service
	logger *zap.Logger
}

// NewPages creates a new pages handler
func NewPages(svc review.Service, logger *zap.Logger) *Pages {
	return &Pages{svc: svc, logger: logger}
}

// dashboardData is what the dashboard template renders
type dashboardData struct {
	Records  []presenter.TranscriptionView
	Statuses []entities.Status
	Query    string
	Error    string
}

// Landing renders the static landing page
func (h *Pages) Landing(c echo.Context) error {
	return c.Render(http.StatusOK, "landing.html", nil)
}

// Dashboard renders the record list, newest first. A store failure
// replaces the table with an error panel rather than a bare 500 page.
// An optional ?q= applies the search rule before first paint; the same
// rule runs client-side as the operator types.
func (h *Pages) Dashboard(c echo.Context) error {
	var req dto.DashboardRequest
	if err := c.Bind(&req); err != nil {
		req = dto.DashboardRequest{}
	}

	data := dashboardData{
		Statuses: entities.Statuses(),
		Query:    req.Query,
	}

	records, err := h.svc.ListTranscriptions(c.Request().Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("dashboard load failed",
				zap.String("request_id", getRequestID(c)),
				zap.Error(err),
			)
		}
		data.Error = "Failed to load transcriptions. Please try again later."
		return c.Render(http.StatusInternalServerError, "dashboard.html", data)
	}

	data.Records = presenter.ToTranscriptionViews(review.Filter(records, req.Query))
	return c.Render(http.StatusOK, "dashboard.html", data)
}
