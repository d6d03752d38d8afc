package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"krishi/database"
	"krishi/entities"
	"krishi/pkg/farm/repositoryImp"
	"krishi/pkg/farm/service"
	"krishi/pkg/logger"
	"krishi/pkg/yield"
)

type stubAdvisor struct{ out yield.Outcome }

func (s stubAdvisor) Evaluate(*entities.FarmInput) yield.Outcome { return s.out }

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	return db
}

func plot() *entities.FarmInput {
	return &entities.FarmInput{
		District: "cuttack", Crop: "rice", Season: "kharif",
		SowingDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), FieldArea: 2,
		Irrigation: "none", SoilType: "alluvial", SeedVariety: "local", PestPresence: true,
	}
}

func TestSubmitStoresInputAndRecommendation(t *testing.T) {
	db := openDB(t)
	eng := yield.NewEngine(logger.Nop(), yield.NoJitter())
	svc := NewFarmService(repositoryImp.New(db), eng, logger.Nop())

	in := plot()
	rec, err := svc.Submit(in)
	require.NoError(t, err)

	assert.NotZero(t, in.FarmInputID)
	assert.Equal(t, in.FarmInputID, rec.FarmInputID)
	assert.InDelta(t, yield.RuleBasedYield(in), rec.PredictedYield, 1e-9)
	assert.Equal(t, yield.Confidence(rec.PredictedYield), rec.ConfidenceInterval)
	assert.Equal(t, 25.0, rec.EstimatedGain)
	assert.Equal(t, yield.PriorityAction(in), rec.Action1)
	assert.Equal(t, yield.FertilizerAction(in), rec.Action2)
	assert.Equal(t, yield.PracticeAction(in), rec.Action3)
	assert.NotEmpty(t, rec.Reasoning)

	var n int64
	require.NoError(t, db.Model(&entities.Recommendation{}).Where("farm_input_id = ?", in.FarmInputID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSubmitRollsBackIncompleteRecommendation(t *testing.T) {
	db := openDB(t)
	adv := stubAdvisor{out: yield.Outcome{
		PredictedYield: 2000,
		Recommendations: yield.Recommendations{
			Action1: "a", Action3: "c", Reasoning: "r", EstimatedGain: 10,
		},
	}}
	svc := NewFarmService(repositoryImp.New(db), adv, logger.Nop())

	_, err := svc.Submit(plot())
	require.ErrorIs(t, err, yield.ErrIncompleteRecommendation)

	var n int64
	require.NoError(t, db.Model(&entities.FarmInput{}).Count(&n).Error)
	assert.Zero(t, n, "farm input must not outlive a failed recommendation")
}

func TestGet(t *testing.T) {
	db := openDB(t)
	svc := NewFarmService(repositoryImp.New(db), yield.NewEngine(nil, yield.NoJitter()), logger.Nop())

	in := plot()
	_, err := svc.Submit(in)
	require.NoError(t, err)

	got, err := svc.Get(in.FarmInputID)
	require.NoError(t, err)
	assert.Equal(t, "cuttack", got.District)
	assert.True(t, got.PestPresence)

	_, err = svc.Get(in.FarmInputID + 100)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
