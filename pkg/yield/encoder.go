package yield

import "krishi/entities"

// FeatureCount is the length of the vector produced by Encode.
const FeatureCount = 8

// Feature positions inside an encoded vector.
const (
	FeatCrop = iota
	FeatDistrict
	FeatSeason
	FeatIrrigation
	FeatSeed
	FeatSoil
	FeatSoilHealthCard
	FeatPest
)

// Encode maps a farm input onto the fixed-order integer vector trained
// estimators consume. Unknown enum values encode as 0.
func Encode(f *entities.FarmInput) []int {
	return []int{
		cropCodes[f.Crop],
		districtCodes[f.District],
		seasonCodes[f.Season],
		irrigationCodes[f.Irrigation],
		seedCodes[f.SeedVariety],
		soilCodes[f.SoilType],
		boolCode(f.SoilHealthCard),
		boolCode(f.PestPresence),
	}
}

func boolCode(b bool) int {
	if b {
		return 1
	}
	return 0
}
