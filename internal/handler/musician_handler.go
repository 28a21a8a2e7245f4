package handler

import (
	"net/http"
	"strings"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type MusicianHandler struct {
	svc service.ProfileService
}

func NewMusicianHandler(svc service.ProfileService) *MusicianHandler {
	return &MusicianHandler{svc: svc}
}

func (h *MusicianHandler) RegisterRoutes(api *echo.Group, requireUser echo.MiddlewareFunc) {
	musicians := api.Group("/musicians")
	musicians.GET("", h.Search)
	musicians.GET("/me", h.GetOwn, requireUser)
	musicians.POST("/profile", h.Create, requireUser)
	musicians.PUT("/profile", h.Update, requireUser)
	musicians.GET("/:id", h.Get)
}

func (h *MusicianHandler) Create(c echo.Context) error {
	var req dto.MusicianProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	musician, err := h.svc.CreateMusician(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToMusicianResponse(musician))
}

func (h *MusicianHandler) Update(c echo.Context) error {
	var req dto.MusicianProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	musician, err := h.svc.UpdateMusician(c.Request().Context(), middleware.CurrentUser(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToMusicianResponse(musician))
}

func (h *MusicianHandler) GetOwn(c echo.Context) error {
	musician, err := h.svc.GetOwnMusician(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToMusicianResponse(musician))
}

func (h *MusicianHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id", "musician")
	if err != nil {
		return err
	}

	musician, err := h.svc.GetMusician(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.ToRatedMusicianResponse(musician))
}

func (h *MusicianHandler) Search(c echo.Context) error {
	filter := repository.MusicianFilter{
		Query:      strings.TrimSpace(c.QueryParam("q")),
		Genre:      strings.ToLower(strings.TrimSpace(c.QueryParam("genre"))),
		Instrument: strings.ToLower(strings.TrimSpace(c.QueryParam("instrument"))),
		Location:   strings.TrimSpace(c.QueryParam("location")),
		Sort:       c.QueryParam("sort"),
	}
	err := echo.QueryParamsBinder(c).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit and offset must be integers")
	}

	items, total, err := h.svc.SearchMusicians(c.Request().Context(), &filter)
	if err != nil {
		return httpError(err)
	}

	resp := dto.MusicianListResponse{
		Items:  make([]dto.MusicianResponse, len(items)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i := range items {
		resp.Items[i] = dto.ToRatedMusicianResponse(&items[i])
	}
	return c.JSON(http.StatusOK, resp)
}
