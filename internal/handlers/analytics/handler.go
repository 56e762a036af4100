package analytics

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/analytics/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/admin", handler.GetAdminPanel)
		routerGroup.Post("/revenue/export", handler.ExportRevenue)
	})
}

// GetDashboard returns the landing-page aggregates.
// @Summary Get dashboard analytics
// @Description Retrieve occupancy, tallies, average stay and revenue aggregates.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard aggregates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetAdminPanel returns the monthly revenue series.
// @Summary Get admin panel analytics
// @Description Retrieve the monthly revenue series and payment counts.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.AdminPanelResponse] "Admin panel aggregates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/admin [get]
// @Security BearerAuth
func (handler *Handler) GetAdminPanel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminPanel")
	defer scope.End()

	panel, err := handler.service.AdminPanel(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin panel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin panel retrieved successfully")

	response.WithJSON(w, http.StatusOK, panel)
}

// ExportRevenue uploads the revenue report and returns its URL.
// @Summary Export the revenue report
// @Description Render the monthly revenue series as CSV and upload it to object storage.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 201 {object} response.Data[dto.ExportRevenueResponse] "Report uploaded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/analytics/revenue/export [post]
// @Security BearerAuth
func (handler *Handler) ExportRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportRevenue")
	defer scope.End()

	report, err := handler.service.ExportRevenue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report exported successfully")

	response.WithJSON(w, http.StatusCreated, report)
}
