package serviceImp

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"krishi/database"
	"krishi/entities"
	"krishi/pkg/logger"
	"krishi/pkg/recommendation/repository"
	"krishi/pkg/recommendation/repositoryImp"
	"krishi/pkg/recommendation/service"
	"krishi/pkg/yield"
)

type fixedAverage float64

func (a fixedAverage) DistrictAverage(_, _, _ string) float64 { return float64(a) }

func setup(t *testing.T, avg districtAverager) (*gorm.DB, service.RecommendationService) {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	return db, NewRecommendationService(repositoryImp.New(db), avg, logger.Nop())
}

func seed(t *testing.T, db *gorm.DB, crop, season string, area, predicted, gain float64) *entities.Recommendation {
	t.Helper()
	f := &entities.FarmInput{District: "puri", Crop: crop, Season: season, SowingDate: time.Now(), FieldArea: area,
		Irrigation: "canal", SoilType: "alluvial", SeedVariety: "hyv"}
	require.NoError(t, db.Create(f).Error)
	r := &entities.Recommendation{FarmInputID: f.FarmInputID, PredictedYield: predicted, EstimatedGain: gain,
		ConfidenceInterval: yield.Confidence(predicted), Action1: "a1", Action2: "a2", Action3: "a3", Reasoning: "why"}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestCompare(t *testing.T) {
	c := Compare(3000, 2500)
	assert.Equal(t, 3000.0, c.Predicted)
	assert.Equal(t, 2500.0, c.DistrictAvg)
	assert.InDelta(t, 20.0, c.Improvement, 1e-9)

	assert.InDelta(t, -50.0, Compare(1000, 2000).Improvement, 1e-9)
	assert.Zero(t, Compare(1000, 0).Improvement)
}

func TestShowBuildsDetail(t *testing.T) {
	db, svc := setup(t, fixedAverage(2500))
	r := seed(t, db, "rice", "kharif", 2.5, 3000, 12)

	d, err := svc.Show(r.RecommendationID)
	require.NoError(t, err)
	assert.Equal(t, r.RecommendationID, d.RecommendationID)
	assert.Equal(t, "rice", d.FarmInput.Crop)
	assert.InDelta(t, 7500.0, d.TotalProduction, 1e-9)
	assert.InDelta(t, 20.0, d.YieldComparison.Improvement, 1e-9)

	_, err = svc.Show(r.RecommendationID + 10)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestShowUsesEngineDistrictAverage(t *testing.T) {
	db, svc := setup(t, yield.NewEngine(nil))
	r := seed(t, db, "rice", "kharif", 1, 2660, 5)

	d, err := svc.Show(r.RecommendationID)
	require.NoError(t, err)
	assert.InDelta(t, 2660.0, d.YieldComparison.DistrictAvg, 1e-9)
	assert.InDelta(t, 0.0, d.YieldComparison.Improvement, 1e-9)
}

func TestSummarize(t *testing.T) {
	db, svc := setup(t, fixedAverage(1))
	seed(t, db, "rice", "kharif", 1, 3000, 10)
	seed(t, db, "rice", "rabi", 1, 2000, 20)
	seed(t, db, "rice", "zaid", 1, 4000, 15)
	seed(t, db, "maize", "kharif", 1, 9000, 25)

	s, err := svc.Summarize("rice")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 3000.0, s.MeanYield, 1e-9)
	assert.InDelta(t, 3000.0, s.MedianYield, 1e-9)
	assert.Equal(t, 2000.0, s.MinYield)
	assert.Equal(t, 4000.0, s.MaxYield)
	assert.InDelta(t, 15.0, s.MeanGain, 1e-9)

	all, err := svc.Summarize("")
	require.NoError(t, err)
	assert.Equal(t, 4, all.Count)
	assert.Equal(t, 9000.0, all.MaxYield)

	none, err := svc.Summarize("cotton")
	require.NoError(t, err)
	assert.Zero(t, none.Count)
	assert.Zero(t, none.MeanYield)
}

func TestExportWritesOneRowPerRecommendation(t *testing.T) {
	db, svc := setup(t, fixedAverage(1))
	seed(t, db, "rice", "kharif", 2, 3000, 10)
	seed(t, db, "maize", "rabi", 1, 3500, 8)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf, repository.Filter{Crop: "maize"}))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()

	rows, err := x.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Recommendation ID", rows[0][0])
	assert.Equal(t, "maize", rows[1][3])
	assert.Equal(t, "rabi", rows[1][4])
	assert.Equal(t, "3500", rows[1][6])
}
