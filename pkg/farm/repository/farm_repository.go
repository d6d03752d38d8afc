package repository

import "krishi/entities"

// RecommendFunc builds the recommendation for a farm input that has just been stored.
type RecommendFunc func(f *entities.FarmInput) (*entities.Recommendation, error)

type FarmRepository interface {
	// CreateWithRecommendation stores f and the recommendation built for it in
	// one transaction; neither is kept when build fails.
	CreateWithRecommendation(f *entities.FarmInput, build RecommendFunc) (*entities.Recommendation, error)
	FindByID(id uint) (*entities.FarmInput, error)
}
