package handler

import (
	"net/http"

	"github.com/Ozioma45/MusicHub-sub000/internal/dto"
	"github.com/Ozioma45/MusicHub-sub000/internal/middleware"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(api *echo.Group, requireUser echo.MiddlewareFunc) {
	api.GET("/musicians/:id/reviews", h.List)
	api.POST("/musicians/:id/reviews", h.Create, requireUser)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	musicianID, err := parseID(c, "id", "musician")
	if err != nil {
		return err
	}
	var req dto.CreateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	review, err := h.svc.Create(c.Request().Context(), middleware.CurrentUser(c), musicianID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) List(c echo.Context) error {
	musicianID, err := parseID(c, "id", "musician")
	if err != nil {
		return err
	}

	reviews, summary, err := h.svc.List(c.Request().Context(), musicianID)
	if err != nil {
		return httpError(err)
	}

	resp := dto.ReviewListResponse{
		Items:         make([]dto.ReviewResponse, len(reviews)),
		AverageRating: summary.AverageRating,
		ReviewCount:   summary.ReviewCount,
	}
	for i := range reviews {
		resp.Items[i] = dto.ToReviewResponse(&reviews[i])
	}
	return c.JSON(http.StatusOK, resp)
}
