package controllerImp

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"krishi/pkg/recommendation/repository"
	"krishi/pkg/recommendation/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type RecommendationCtrl struct{ svc service.RecommendationService }

func New(svc service.RecommendationService) *RecommendationCtrl { return &RecommendationCtrl{svc} }

func filterFrom(c echo.Context) repository.Filter {
	return repository.Filter{District: c.QueryParam("district"), Crop: c.QueryParam("crop")}
}

func (h *RecommendationCtrl) Show(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	d, err := h.svc.Show(uint(id))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Recommendation not found. Please try generating a new recommendation."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *RecommendationCtrl) List(c echo.Context) error {
	recs, err := h.svc.List(filterFrom(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *RecommendationCtrl) Summary(c echo.Context) error {
	s, err := h.svc.Summarize(c.QueryParam("crop"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *RecommendationCtrl) Export(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.svc.Export(&buf, filterFrom(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="recommendations.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
