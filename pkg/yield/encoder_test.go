package yield

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krishi/entities"
)

func TestEncodeScenario(t *testing.T) {
	assert.Equal(t, []int{1, 7, 1, 0, 0, 1, 0, 1}, Encode(scenario()))

	f := &entities.FarmInput{
		Crop: "turmeric", District: "sundargarh", Season: "zaid", Irrigation: "lift",
		SeedVariety: "hybrid", SoilType: "saline", SoilHealthCard: true,
	}
	assert.Equal(t, []int{8, 30, 3, 4, 2, 4, 1, 0}, Encode(f))
}

func TestEncodeUnknownValuesDegradeToZero(t *testing.T) {
	got := Encode(&entities.FarmInput{Crop: "barley", District: "atlantis", Season: "winter", Irrigation: "sprinkler", SeedVariety: "gm", SoilType: "peat"})
	assert.Equal(t, make([]int, FeatureCount), got)
}

func TestEncodeIsTotalAndStable(t *testing.T) {
	for _, crop := range values(entities.CropChoices) {
		for _, district := range values(entities.DistrictChoices) {
			for _, season := range values(entities.SeasonChoices) {
				f := &entities.FarmInput{Crop: crop, District: district, Season: season, Irrigation: "drip", SeedVariety: "hyv", SoilType: "red_black"}
				v := Encode(f)
				assert.Len(t, v, FeatureCount)
				assert.Positive(t, v[FeatCrop])
				assert.Positive(t, v[FeatDistrict])
				assert.Positive(t, v[FeatSeason])
				assert.Equal(t, v, Encode(f))
			}
		}
	}
}

func TestEncodeCoversEveryDeclaredChoice(t *testing.T) {
	tables := map[string]map[string]int{
		entities.FieldCrop:        cropCodes,
		entities.FieldDistrict:    districtCodes,
		entities.FieldSeason:      seasonCodes,
		entities.FieldIrrigation:  irrigationCodes,
		entities.FieldSeedVariety: seedCodes,
		entities.FieldSoilType:    soilCodes,
	}
	for field, codes := range tables {
		assert.Len(t, codes, len(entities.Choices[field]), field)
		for _, c := range entities.Choices[field] {
			_, ok := codes[c.Value]
			assert.True(t, ok, "%s=%s has no code", field, c.Value)
		}
	}
}
