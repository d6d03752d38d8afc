package repositoryImp

import (
	"krishi/entities"
	"krishi/pkg/recommendation/repository"

	"gorm.io/gorm"
)

type recRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendationRepository { return &recRepo{db} }

func (r *recRepo) FindByID(id uint) (*entities.Recommendation, error) {
	var rec entities.Recommendation
	err := r.db.Preload("FarmInput").
		Where("recommendation_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recRepo) List(f repository.Filter) ([]entities.Recommendation, error) {
	q := r.db.Model(&entities.Recommendation{}).
		Preload("FarmInput").
		Joins("JOIN farm_inputs ON farm_inputs.farm_input_id = recommendations.farm_input_id")
	if f.District != "" {
		q = q.Where("farm_inputs.district = ?", f.District)
	}
	if f.Crop != "" {
		q = q.Where("farm_inputs.crop = ?", f.Crop)
	}
	out := []entities.Recommendation{}
	err := q.Order("recommendations.created_at DESC").
		Order("recommendations.recommendation_id DESC").
		Find(&out).Error
	return out, err
}
