package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/models"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(api *echo.Group, requireUser echo.MiddlewareFunc) {
	me := api.Group("/me", requireUser)
	me.GET("", h.Me)
	me.POST("/roles", h.AddRole)
	me.PUT("/active-role", h.SwitchRole)
}

func (h *UserHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return c.JSON(http.StatusOK, dto.ToMeResponse(user, service.NextPage(user)))
}

func (h *UserHandler) AddRole(c echo.Context) error {
	var req dto.RoleRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.svc.AddRole(c.Request().Context(), middleware.CurrentUser(c), models.Role(req.Role))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToMeResponse(user, service.NextPage(user)))
}

func (h *UserHandler) SwitchRole(c echo.Context) error {
	var req dto.RoleRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	user, err := h.svc.SwitchRole(c.Request().Context(), middleware.CurrentUser(c), models.Role(req.Role))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToMeResponse(user, service.NextPage(user)))
}
