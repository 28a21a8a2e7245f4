package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(api *echo.Group, requireUser echo.MiddlewareFunc) {
	bookings := api.Group("/bookings", requireUser)
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.PATCH("/:id/status", h.UpdateStatus)
	bookings.POST("/:id/accept", h.transitionTo(models.StatusAccepted))
	bookings.POST("/:id/decline", h.transitionTo(models.StatusDeclined))
	bookings.POST("/:id/cancel", h.transitionTo(models.StatusCancelled))
	bookings.POST("/:id/complete", h.transitionTo(models.StatusCompleted))
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c, "id", "booking")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(
		c.Request().Context(),
		middleware.CurrentUser(c),
		c.QueryParam("as"),
		c.QueryParam("status"),
	)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateBookingStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	return h.applyStatus(c, req.Status)
}

func (h *BookingHandler) transitionTo(status models.BookingStatus) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.applyStatus(c, string(status))
	}
}

func (h *BookingHandler) applyStatus(c echo.Context, status string) error {
	id, err := parseID(c, "id", "booking")
	if err != nil {
		return err
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), middleware.CurrentUser(c), id, status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
