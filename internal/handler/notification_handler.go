package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) RegisterRoutes(api *echo.Group, requireUser echo.MiddlewareFunc) {
	n := api.Group("/notifications", requireUser)
	n.GET("", h.List)
	n.GET("/unread-count", h.UnreadCount)
	n.PATCH("/read-all", h.MarkAllRead)
	n.PATCH("/:id/read", h.MarkRead)
	n.DELETE("/:id", h.Delete)
}

func (h *NotificationHandler) List(c echo.Context) error {
	var (
		unread bool
		limit  int
	)
	err := echo.QueryParamsBinder(c).
		Bool("unread", &unread).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	list, err := h.svc.List(c.Request().Context(), middleware.CurrentUser(c), unread, limit)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.NotificationResponse, len(list))
	for i := range list {
		resp[i] = dto.ToNotificationResponse(&list[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.svc.UnreadCount(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c, "id", "notification")
	if err != nil {
		return err
	}
	if err := h.svc.MarkRead(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	count, err := h.svc.MarkAllRead(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id", "notification")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
