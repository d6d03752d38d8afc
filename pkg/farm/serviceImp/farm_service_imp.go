package serviceImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"krishi/entities"
	repo "krishi/pkg/farm/repository"
	"krishi/pkg/farm/service"
	"krishi/pkg/logger"
	"krishi/pkg/yield"
)

type advisor interface {
	Evaluate(f *entities.FarmInput) yield.Outcome
}

type farmSvc struct {
	r   repo.FarmRepository
	eng advisor
	log *logger.Logger
}

func NewFarmService(r repo.FarmRepository, eng advisor, log *logger.Logger) service.FarmService {
	return &farmSvc{r: r, eng: eng, log: log.With("service", "FarmService")}
}

func (s *farmSvc) Submit(f *entities.FarmInput) (*entities.Recommendation, error) {
	rec, err := s.r.CreateWithRecommendation(f, func(saved *entities.FarmInput) (*entities.Recommendation, error) {
		out := s.eng.Evaluate(saved)
		if err := out.Validate(); err != nil {
			return nil, err
		}
		s.log.Info("recommendation generated",
			"farm_input_id", saved.FarmInputID, "crop", saved.Crop, "district", saved.District,
			"mode", out.Mode, "predicted_yield", out.PredictedYield, "estimated_gain", out.EstimatedGain)
		return &entities.Recommendation{
			PredictedYield:     out.PredictedYield,
			ConfidenceInterval: out.ConfidenceInterval,
			EstimatedGain:      out.EstimatedGain,
			Action1:            out.Action1,
			Action2:            out.Action2,
			Action3:            out.Action3,
			Reasoning:          out.Reasoning,
		}, nil
	})
	if err != nil {
		msg := "farm input not stored"
		if errors.Is(err, yield.ErrIncompleteRecommendation) {
			msg = "engine produced an incomplete recommendation"
		}
		s.log.Error(msg, "crop", f.Crop, "district", f.District, "error", err)
		return nil, fmt.Errorf("submit farm input: %w", err)
	}
	return rec, nil
}

func (s *farmSvc) Get(id uint) (*entities.FarmInput, error) {
	f, err := s.r.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	return f, err
}
