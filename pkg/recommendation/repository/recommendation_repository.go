package repository

import "krishi/entities"

// Filter narrows listings by the farm input's district and crop; empty fields match everything.
type Filter struct {
	District string
	Crop     string
}

type RecommendationRepository interface {
	FindByID(id uint) (*entities.Recommendation, error)
	// List returns matching recommendations newest first, each with its farm input.
	List(f Filter) ([]entities.Recommendation, error)
}
