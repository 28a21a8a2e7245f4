package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type BookerHandler struct {
	svc service.ProfileService
}

func NewBookerHandler(svc service.ProfileService) *BookerHandler {
	return &BookerHandler{svc: svc}
}

func (h *BookerHandler) RegisterRoutes(api *echo.Group, requireUser echo.MiddlewareFunc) {
	bookers := api.Group("/bookers")
	bookers.GET("/me", h.GetOwn, requireUser)
	bookers.POST("/profile", h.Create, requireUser)
	bookers.PUT("/profile", h.Update, requireUser)
	bookers.GET("/:id", h.Get)
}

func (h *BookerHandler) Create(c echo.Context) error {
	var req dto.BookerProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	booker, err := h.svc.CreateBooker(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookerResponse(booker))
}

func (h *BookerHandler) Update(c echo.Context) error {
	var req dto.BookerProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	booker, err := h.svc.UpdateBooker(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookerResponse(booker))
}

func (h *BookerHandler) GetOwn(c echo.Context) error {
	booker, err := h.svc.GetOwnBooker(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookerResponse(booker))
}

func (h *BookerHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id", "booker")
	if err != nil {
		return err
	}

	booker, err := h.svc.GetBooker(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookerResponse(booker))
}
