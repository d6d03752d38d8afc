package service

import (
	"errors"

	"krishi/entities"
)

var ErrNotFound = errors.New("farm input not found")

type FarmService interface {
	// Submit stores the input, runs the yield engine on it and stores the
	// resulting recommendation.
	Submit(f *entities.FarmInput) (*entities.Recommendation, error)
	Get(id uint) (*entities.FarmInput, error)
}
