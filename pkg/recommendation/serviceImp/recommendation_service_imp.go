package serviceImp

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/logger"
	repo "krishi/pkg/recommendation/repository"
	"krishi/pkg/recommendation/service"
)

type districtAverager interface {
	DistrictAverage(district, crop, season string) float64
}

type recSvc struct {
	r   repo.RecommendationRepository
	avg districtAverager
	log *logger.Logger
}

func NewRecommendationService(r repo.RecommendationRepository, avg districtAverager, log *logger.Logger) service.RecommendationService {
	return &recSvc{r: r, avg: avg, log: log.With("service", "RecommendationService")}
}

func (s *recSvc) Show(id uint) (*service.Detail, error) {
	rec, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	f := rec.FarmInput
	if f == nil {
		return nil, fmt.Errorf("recommendation %d has no farm input", id)
	}
	return &service.Detail{
		Recommendation:  rec,
		TotalProduction: rec.PredictedYield * f.FieldArea,
		YieldComparison: Compare(rec.PredictedYield, s.avg.DistrictAverage(f.District, f.Crop, f.Season)),
	}, nil
}

// Compare expresses predicted against the district average as a percentage.
func Compare(predicted, districtAvg float64) entities.YieldComparison {
	out := entities.YieldComparison{Predicted: predicted, DistrictAvg: districtAvg}
	if districtAvg > 0 {
		out.Improvement = (predicted - districtAvg) / districtAvg * 100
	}
	return out
}

func (s *recSvc) List(f repo.Filter) ([]entities.Recommendation, error) {
	return s.r.List(f)
}

func (s *recSvc) Summarize(crop string) (*service.Summary, error) {
	recs, err := s.r.List(repo.Filter{Crop: crop})
	if err != nil {
		return nil, err
	}
	sum := &service.Summary{Crop: crop, Count: len(recs)}
	if len(recs) == 0 {
		return sum, nil
	}

	yields := make(stats.Float64Data, 0, len(recs))
	gains := make(stats.Float64Data, 0, len(recs))
	for _, r := range recs {
		yields = append(yields, r.PredictedYield)
		gains = append(gains, r.EstimatedGain)
	}
	// the inputs are non-empty, so stats only fails on programmer error
	if sum.MeanYield, err = yields.Mean(); err != nil {
		return nil, err
	}
	if sum.MedianYield, err = yields.Median(); err != nil {
		return nil, err
	}
	if sum.MinYield, err = yields.Min(); err != nil {
		return nil, err
	}
	if sum.MaxYield, err = yields.Max(); err != nil {
		return nil, err
	}
	if sum.MeanGain, err = gains.Mean(); err != nil {
		return nil, err
	}
	return sum, nil
}
