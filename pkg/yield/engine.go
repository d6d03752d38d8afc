package yield

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"

	"krishi/entities"
	"krishi/pkg/logger"
)

const (
	// MinYield is the floor applied to every prediction, in kg/ha.
	MinYield = 100.0
	// ConfidenceRatio is the half-width of the confidence band relative to the prediction.
	ConfidenceRatio = 0.12

	MinGain = 5.0
	MaxGain = 25.0

	ModeEstimator = "estimator"
	ModeRuleBased = "rule_based"
)

var ErrIncompleteRecommendation = errors.New("incomplete recommendation data generated")

// Labeler resolves enum values (crop, district, ...) to display labels.
type Labeler interface {
	Label(field, value string) string
}

type rawLabels struct{}

func (rawLabels) Label(_, value string) string { return value }

// Recommendations is the advisory part of an outcome.
type Recommendations struct {
	Action1       string  `json:"action_1"`
	Action2       string  `json:"action_2"`
	Action3       string  `json:"action_3"`
	Reasoning     string  `json:"reasoning"`
	EstimatedGain float64 `json:"estimated_gain"`
}

// Validate reports ErrIncompleteRecommendation when any text field is empty
// or the gain falls outside its bounds.
func (r Recommendations) Validate() error {
	switch {
	case r.Action1 == "":
		return fmt.Errorf("%w: action_1", ErrIncompleteRecommendation)
	case r.Action2 == "":
		return fmt.Errorf("%w: action_2", ErrIncompleteRecommendation)
	case r.Action3 == "":
		return fmt.Errorf("%w: action_3", ErrIncompleteRecommendation)
	case r.Reasoning == "":
		return fmt.Errorf("%w: reasoning", ErrIncompleteRecommendation)
	case r.EstimatedGain < MinGain || r.EstimatedGain > MaxGain:
		return fmt.Errorf("%w: estimated_gain %.1f", ErrIncompleteRecommendation, r.EstimatedGain)
	}
	return nil
}

// Outcome is everything the engine produces for one farm input.
type Outcome struct {
	PredictedYield     float64 `json:"predicted_yield"`
	ConfidenceInterval string  `json:"confidence_interval"`
	Mode               string  `json:"mode"`
	Recommendations
}

type Engine struct {
	log       *logger.Logger
	estimator Estimator
	jitter    func() float64
	labels    Labeler
	districts DistrictTable
}

type Option func(*Engine)

// WithEstimator puts a trained estimator in front of the rule-based path.
// A nil estimator, typed or not, keeps the engine rule-based.
func WithEstimator(est Estimator) Option {
	return func(e *Engine) {
		if isNil(est) {
			e.estimator = nil
			return
		}
		e.estimator = est
	}
}

func isNil(est Estimator) bool {
	if est == nil {
		return true
	}
	v := reflect.ValueOf(est)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// WithJitter replaces the random factor applied to rule-based predictions.
func WithJitter(fn func() float64) Option {
	return func(e *Engine) {
		if fn != nil {
			e.jitter = fn
		}
	}
}

// NoJitter pins the rule-based jitter at 1.0.
func NoJitter() Option {
	return WithJitter(func() float64 { return 1.0 })
}

func WithLabels(l Labeler) Option {
	return func(e *Engine) {
		if l != nil {
			e.labels = l
		}
	}
}

func WithDistrictAverages(t DistrictTable) Option {
	return func(e *Engine) { e.districts = t }
}

func NewEngine(log *logger.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	e := &Engine{
		log:    log.With("component", "yield"),
		jitter: uniformJitter,
		labels: rawLabels{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func uniformJitter() float64 { return 0.95 + rand.Float64()*0.10 }

// Mode reports which prediction path the engine starts from.
func (e *Engine) Mode() string {
	if e.estimator != nil {
		return ModeEstimator
	}
	return ModeRuleBased
}

// Evaluate runs prediction and recommendation for one input.
func (e *Engine) Evaluate(f *entities.FarmInput) Outcome {
	y, conf, mode := e.predict(f)
	return Outcome{
		PredictedYield:     y,
		ConfidenceInterval: conf,
		Mode:               mode,
		Recommendations:    e.GenerateRecommendations(f, y),
	}
}

// PredictYield returns the yield estimate in kg/ha and its confidence band.
// Estimator failures are logged and answered by the rule-based path.
func (e *Engine) PredictYield(f *entities.FarmInput) (float64, string) {
	y, conf, _ := e.predict(f)
	return y, conf
}

func (e *Engine) predict(f *entities.FarmInput) (float64, string, string) {
	if e.estimator != nil {
		y, err := e.estimate(f)
		if err == nil {
			return y, Confidence(y), ModeEstimator
		}
		e.log.Warn("estimator prediction failed, falling back to rule-based",
			"farm_input_id", f.FarmInputID, "crop", f.Crop, "error", err)
	}
	y := RuleBasedYield(f) * e.jitter()
	y = math.Max(y, MinYield)
	return y, Confidence(y), ModeRuleBased
}

func (e *Engine) estimate(f *entities.FarmInput) (y float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrInvalidPrediction, r)
		}
	}()
	y, err = e.estimator.Predict(Encode(f))
	if err != nil {
		return 0, err
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrInvalidPrediction
	}
	return math.Max(y, MinYield), nil
}

// RuleBasedYield is the crop base yield times every practice multiplier,
// before jitter and flooring.
func RuleBasedYield(f *entities.FarmInput) float64 {
	base, ok := baseYields[f.Crop]
	if !ok {
		base = defaultBaseYield
	}
	return base * Multiplier(f)
}

// Multiplier combines the practice adjustments. Unlisted values count as 1.0.
func Multiplier(f *entities.FarmInput) float64 {
	m := 1.0
	m *= factor(irrigationFactor, f.Irrigation)
	m *= factor(seedFactor, f.SeedVariety)
	m *= factor(soilFactor, f.SoilType)
	m *= factor(seasonFactor, f.Season)
	if f.SoilHealthCard {
		m *= soilHealthCardFactor
	}
	if f.PestPresence {
		m *= pestFactor
	}
	return m
}

func factor(table map[string]float64, key string) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return 1.0
}

// Confidence renders the ±12% band rounded to the nearest unit.
func Confidence(y float64) string {
	return fmt.Sprintf("±%d", int64(math.Round(y*ConfidenceRatio)))
}

// GenerateRecommendations picks the three actions for the input. It does not
// depend on which prediction path produced predicted.
func (e *Engine) GenerateRecommendations(f *entities.FarmInput, predicted float64) Recommendations {
	return Recommendations{
		Action1:       PriorityAction(f),
		Action2:       FertilizerAction(f),
		Action3:       PracticeAction(f),
		Reasoning:     e.reasoning(f),
		EstimatedGain: PotentialGain(f),
	}
}

// PotentialGain estimates the yield percentage recoverable through better
// practices, clamped to [MinGain, MaxGain].
func PotentialGain(f *entities.FarmInput) float64 {
	gain := 0.0
	switch f.Irrigation {
	case "none":
		gain += 20
	case "lift", "canal":
		gain += 8
	case "tubewell":
		gain += 5
	}
	switch f.SeedVariety {
	case "local":
		gain += 15
	case "hyv":
		gain += 8
	}
	if !f.SoilHealthCard {
		gain += 10
	}
	if f.PestPresence {
		gain += 12
	}
	return math.Min(math.Max(gain, MinGain), MaxGain)
}

// PriorityAction is the single most urgent step; first match wins.
func PriorityAction(f *entities.FarmInput) string {
	switch {
	case f.Irrigation == "none" && (f.Crop == "rice" || f.Crop == "sugarcane"):
		return actionIrrigateUrgent
	case f.PestPresence:
		return actionPestControl
	case !f.SoilHealthCard:
		return actionSoilTest
	case f.Irrigation == "none":
		return actionDrip
	default:
		return actionMoisture
	}
}

func FertilizerAction(f *entities.FarmInput) string {
	if !f.SoilHealthCard {
		return fertilizerNoSoilTest
	}
	if advice, ok := fertilizerAdvice[f.Crop]; ok {
		return advice
	}
	return fertilizerGeneric
}

func PracticeAction(f *entities.FarmInput) string {
	switch {
	case f.SeedVariety == "local":
		return fmt.Sprintf(actionUpgradeSeedFmt, f.Crop)
	case f.Season == "kharif":
		return actionKharifWeather
	case f.Season == "rabi":
		return actionRabiTiming
	default:
		return actionFieldCare
	}
}

func (e *Engine) reasoning(f *entities.FarmInput) string {
	return fmt.Sprintf("Yield analysis of %s in %s during %s season using %s irrigation on %s soil.",
		e.labels.Label(entities.FieldCrop, f.Crop),
		e.labels.Label(entities.FieldDistrict, f.District),
		e.labels.Label(entities.FieldSeason, f.Season),
		e.labels.Label(entities.FieldIrrigation, f.Irrigation),
		e.labels.Label(entities.FieldSoilType, f.SoilType),
	)
}
