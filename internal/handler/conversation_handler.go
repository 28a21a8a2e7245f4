package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type ConversationHandler struct {
	svc service.ConversationService
}

func NewConversationHandler(svc service.ConversationService) *ConversationHandler {
	return &ConversationHandler{svc: svc}
}

func (h *ConversationHandler) RegisterRoutes(api *echo.Group, requireUser echo.MiddlewareFunc) {
	convs := api.Group("/conversations", requireUser)
	convs.POST("", h.Start)
	convs.GET("", h.List)
	convs.GET("/unread-count", h.UnreadCount)
	convs.GET("/:id/messages", h.Messages)
	convs.POST("/:id/messages", h.Send)
	convs.PUT("/:id/read", h.MarkRead)
}

func (h *ConversationHandler) Start(c echo.Context) error {
	var req dto.StartConversationRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	summary, err := h.svc.Start(c.Request().Context(), middleware.CurrentUser(c), req.ParticipantID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToConversationResponse(summary))
}

func (h *ConversationHandler) List(c echo.Context) error {
	list, err := h.svc.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.ConversationResponse, len(list))
	for i := range list {
		resp[i] = dto.ToConversationResponse(&list[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ConversationHandler) UnreadCount(c echo.Context) error {
	count, err := h.svc.UnreadCount(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *ConversationHandler) Messages(c echo.Context) error {
	id, err := parseID(c, "id", "conversation")
	if err != nil {
		return err
	}

	var (
		after uint
		limit int
	)
	err = echo.QueryParamsBinder(c).
		Uint("after", &after).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "after and limit must be integers")
	}

	msgs, err := h.svc.Messages(c.Request().Context(), middleware.CurrentUser(c), id, after, limit)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.MessageResponse, len(msgs))
	for i := range msgs {
		resp[i] = dto.ToMessageResponse(&msgs[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ConversationHandler) Send(c echo.Context) error {
	id, err := parseID(c, "id", "conversation")
	if err != nil {
		return err
	}
	var req dto.SendMessageRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	msg, err := h.svc.Send(c.Request().Context(), middleware.CurrentUser(c), id, req.Text)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}

func (h *ConversationHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c, "id", "conversation")
	if err != nil {
		return err
	}
	if err := h.svc.MarkRead(c.Request().Context(), middleware.CurrentUser(c), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
