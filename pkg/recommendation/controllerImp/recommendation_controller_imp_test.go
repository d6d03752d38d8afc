package controllerImp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/recommendation/repository"
	"krishi/pkg/recommendation/service"
)

type stubService struct {
	detail  *service.Detail
	listed  repository.Filter
	summary *service.Summary
}

func (s *stubService) Show(id uint) (*service.Detail, error) {
	if s.detail == nil || s.detail.RecommendationID != id {
		return nil, service.ErrNotFound
	}
	return s.detail, nil
}

func (s *stubService) List(f repository.Filter) ([]entities.Recommendation, error) {
	s.listed = f
	return []entities.Recommendation{{RecommendationID: 1}}, nil
}

func (s *stubService) Summarize(crop string) (*service.Summary, error) {
	s.summary = &service.Summary{Crop: crop, Count: 2}
	return s.summary, nil
}

func (s *stubService) Export(w io.Writer, f repository.Filter) error {
	s.listed = f
	_, err := w.Write([]byte("PK"))
	return err
}

func serve(svc service.RecommendationService) *echo.Echo {
	e := echo.New()
	h := New(svc)
	e.GET("/recommendations", h.List)
	e.GET("/recommendations/summary", h.Summary)
	e.GET("/recommendations/export.xlsx", h.Export)
	e.GET("/recommendations/:id", h.Show)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestShow(t *testing.T) {
	svc := &stubService{detail: &service.Detail{
		Recommendation:  &entities.Recommendation{RecommendationID: 7, PredictedYield: 3000},
		TotalProduction: 6000,
		YieldComparison: entities.YieldComparison{Predicted: 3000, DistrictAvg: 2500, Improvement: 20},
	}}
	e := serve(svc)

	res := get(e, "/recommendations/7")
	require.Equal(t, http.StatusOK, res.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body["recommendation_id"])
	assert.EqualValues(t, 6000, body["total_production"])
	assert.EqualValues(t, 20, body["yield_comparison"].(map[string]any)["improvement"])

	res = get(e, "/recommendations/8")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, res.Body.String(), "Recommendation not found")

	assert.Equal(t, http.StatusBadRequest, get(e, "/recommendations/x").Code)
}

func TestListPassesFilters(t *testing.T) {
	svc := &stubService{}
	res := get(serve(svc), "/recommendations?district=puri&crop=rice")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, repository.Filter{District: "puri", Crop: "rice"}, svc.listed)
}

func TestSummaryRouteIsNotAnID(t *testing.T) {
	svc := &stubService{}
	res := get(serve(svc), "/recommendations/summary?crop=maize")
	require.Equal(t, http.StatusOK, res.Code)
	require.NotNil(t, svc.summary)
	assert.Equal(t, "maize", svc.summary.Crop)
}

func TestExportServesAttachment(t *testing.T) {
	svc := &stubService{}
	res := get(serve(svc), "/recommendations/export.xlsx?crop=wheat")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, xlsxMIME, res.Header().Get(echo.HeaderContentType))
	assert.Contains(t, res.Header().Get(echo.HeaderContentDisposition), "recommendations.xlsx")
	assert.Equal(t, "PK", res.Body.String())
	assert.Equal(t, "wheat", svc.listed.Crop)
}
