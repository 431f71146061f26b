package http

import (
	"net/http"

	"watertanker/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetOrdersReport handles GET /api/reports/orders.
func (s *Server) GetOrdersReport(ctx echo.Context) error {
	reports, err := s.queries.GetReports.Handle(ctx.Request().Context(), queries.NewGetReportsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersReportResponse{
		TotalOrders:    reports.TotalOrders,
		OrdersByStatus: reports.OrdersByStatus,
	})
}

// GetRevenueReport handles GET /api/reports/revenue. Revenue counts paid
// order charges; recycling figures ride along for the same dashboard.
func (s *Server) GetRevenueReport(ctx echo.Context) error {
	reports, err := s.queries.GetReports.Handle(ctx.Request().Context(), queries.NewGetReportsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, revenueReportResponse{
		TotalRevenue:   reports.TotalRevenue,
		TotalSubmitted: reports.TotalSubmitted,
		TotalCredited:  reports.TotalCredited,
	})
}

// GetFeedbackReport handles GET /api/reports/feedback.
func (s *Server) GetFeedbackReport(ctx echo.Context) error {
	reports, err := s.queries.GetReports.Handle(ctx.Request().Context(), queries.NewGetReportsQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, feedbackReportResponse{
		FeedbackCount: reports.FeedbackCount,
		AverageRating: reports.AverageRating,
	})
}
