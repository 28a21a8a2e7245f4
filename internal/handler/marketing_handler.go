package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type MarketingHandler struct {
	marketing     service.MarketingService
	announcements service.AnnouncementService
}

func NewMarketingHandler(marketing service.MarketingService, announcements service.AnnouncementService) *MarketingHandler {
	return &MarketingHandler{marketing: marketing, announcements: announcements}
}

func (h *MarketingHandler) RegisterRoutes(api *echo.Group, rateLimit echo.MiddlewareFunc) {
	api.GET("/announcements", h.Announcements)
	api.GET("/landing", h.Landing)
	api.POST("/subscribers", h.Subscribe, rateLimit)
	api.POST("/suggestions", h.Suggest, rateLimit)
}

func (h *MarketingHandler) Announcements(c echo.Context) error {
	list, err := h.announcements.Active(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToAnnouncementResponses(list))
}

func (h *MarketingHandler) Landing(c echo.Context) error {
	data, err := h.marketing.Landing(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToLandingResponse(data))
}

func (h *MarketingHandler) Subscribe(c echo.Context) error {
	var req dto.SubscribeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	sub, err := h.marketing.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.SubscriberResponse{ID: sub.ID, Email: sub.Email, CreatedAt: sub.CreatedAt})
}

func (h *MarketingHandler) Suggest(c echo.Context) error {
	var req dto.SuggestionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	s, err := h.marketing.Suggest(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.SuggestionResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Message:   s.Message,
		CreatedAt: s.CreatedAt,
	})
}
