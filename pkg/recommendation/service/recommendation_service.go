package service

import (
	"errors"
	"io"

	"krishi/entities"
	"krishi/pkg/recommendation/repository"
)

var ErrNotFound = errors.New("recommendation not found")

// Detail is what the result page shows for one recommendation.
type Detail struct {
	*entities.Recommendation
	TotalProduction float64                  `json:"total_production"` // kg over the whole field
	YieldComparison entities.YieldComparison `json:"yield_comparison"`
}

type Summary struct {
	Crop        string  `json:"crop,omitempty"`
	Count       int     `json:"count"`
	MeanYield   float64 `json:"mean_yield"`
	MedianYield float64 `json:"median_yield"`
	MinYield    float64 `json:"min_yield"`
	MaxYield    float64 `json:"max_yield"`
	MeanGain    float64 `json:"mean_gain"`
}

type RecommendationService interface {
	Show(id uint) (*Detail, error)
	List(f repository.Filter) ([]entities.Recommendation, error)
	Summarize(crop string) (*Summary, error)
	// Export writes the matching recommendations as an xlsx workbook.
	Export(w io.Writer, f repository.Filter) error
}
