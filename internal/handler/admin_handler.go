package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	admins        service.AdminService
	announcements service.AnnouncementService
}

func NewAdminHandler(admins service.AdminService, announcements service.AnnouncementService) *AdminHandler {
	return &AdminHandler{admins: admins, announcements: announcements}
}

func (h *AdminHandler) RegisterRoutes(api *echo.Group, requireAdmin, rateLimit echo.MiddlewareFunc) {
	admin := api.Group("/admin")
	admin.POST("/login", h.Login, rateLimit)

	guarded := admin.Group("", requireAdmin)
	guarded.POST("/logout", h.Logout)
	guarded.GET("/me", h.Me)
	guarded.GET("/stats", h.Stats)
	guarded.GET("/subscribers", h.Subscribers)
	guarded.GET("/suggestions", h.Suggestions)
	guarded.GET("/announcements", h.ListAnnouncements)
	guarded.POST("/announcements", h.CreateAnnouncement)
	guarded.PUT("/announcements/:id", h.UpdateAnnouncement)
	guarded.DELETE("/announcements/:id", h.DeleteAnnouncement)
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	token, claims, err := h.admins.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: token, ExpiresAt: claims.ExpiresAt.Time})
}

func (h *AdminHandler) Logout(c echo.Context) error {
	if err := h.admins.Logout(c.Request().Context(), middleware.CurrentAdmin(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) Me(c echo.Context) error {
	admin, err := h.admins.Me(c.Request().Context(), middleware.CurrentAdmin(c).AdminID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.AdminResponse{ID: admin.ID, Username: admin.Username, CreatedAt: admin.CreatedAt})
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admins.Stats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *AdminHandler) Subscribers(c echo.Context) error {
	subs, err := h.admins.Subscribers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.SubscriberResponse, len(subs))
	for i, s := range subs {
		resp[i] = dto.SubscriberResponse{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Suggestions(c echo.Context) error {
	list, err := h.admins.Suggestions(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.SuggestionResponse, len(list))
	for i, s := range list {
		resp[i] = dto.SuggestionResponse{ID: s.ID, Name: s.Name, Email: s.Email, Message: s.Message, CreatedAt: s.CreatedAt}
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListAnnouncements(c echo.Context) error {
	list, err := h.announcements.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToAnnouncementResponses(list))
}

func (h *AdminHandler) CreateAnnouncement(c echo.Context) error {
	var req dto.AnnouncementRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	a, err := h.announcements.Create(c.Request().Context(), middleware.CurrentAdmin(c).AdminID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToAnnouncementResponse(a))
}

func (h *AdminHandler) UpdateAnnouncement(c echo.Context) error {
	id, err := parseID(c, "id", "announcement")
	if err != nil {
		return err
	}
	var req dto.AnnouncementRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	a, err := h.announcements.Update(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToAnnouncementResponse(a))
}

func (h *AdminHandler) DeleteAnnouncement(c echo.Context) error {
	id, err := parseID(c, "id", "announcement")
	if err != nil {
		return err
	}
	if err := h.announcements.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
