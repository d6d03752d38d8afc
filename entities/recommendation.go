package entities

import "time"

// Recommendation is created once per FarmInput, right after the yield engine
// ran, and is never updated afterwards.
type Recommendation struct {
	RecommendationID   uint       `gorm:"primaryKey" json:"recommendation_id"`
	FarmInputID        uint       `gorm:"uniqueIndex" json:"farm_input_id"`
	FarmInput          *FarmInput `json:"farm_input,omitempty"`
	PredictedYield     float64    `json:"predicted_yield"`
	ConfidenceInterval string     `gorm:"size:50" json:"confidence_interval"`
	EstimatedGain      float64    `json:"estimated_gain"`
	Action1            string     `json:"action_1"`
	Action2            string     `json:"action_2"`
	Action3            string     `json:"action_3"`
	Reasoning          string     `json:"reasoning"`
	CreatedAt          time.Time  `json:"created_at"`
}

// YieldComparison is not persisted; it is built when a recommendation is shown.
type YieldComparison struct {
	Predicted   float64 `json:"predicted"`
	DistrictAvg float64 `json:"district_avg"`
	Improvement float64 `json:"improvement"`
}
