package repositoryImp

import (
	"krishi/entities"
	"krishi/pkg/farm/repository"

	"gorm.io/gorm"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) CreateWithRecommendation(f *entities.FarmInput, build repository.RecommendFunc) (*entities.Recommendation, error) {
	var rec *entities.Recommendation
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(f).Error; err != nil {
			return err
		}
		out, err := build(f)
		if err != nil {
			return err
		}
		out.FarmInputID = f.FarmInputID
		if err := tx.Omit("FarmInput").Create(out).Error; err != nil {
			return err
		}
		out.FarmInput = f
		rec = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *farmRepo) FindByID(id uint) (*entities.FarmInput, error) {
	var f entities.FarmInput
	if err := r.db.Where("farm_input_id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}
