package entities

// Choice is one selectable value of an enum field together with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

const (
	FieldDistrict    = "district"
	FieldCrop        = "crop"
	FieldSeason      = "season"
	FieldIrrigation  = "irrigation"
	FieldSoilType    = "soil_type"
	FieldSeedVariety = "seed_variety"
)

var DistrictChoices = []Choice{
	{"angul", "Angul"}, {"balangir", "Balangir"}, {"balasore", "Balasore"},
	{"bargarh", "Bargarh"}, {"bhadrak", "Bhadrak"}, {"boudh", "Boudh"},
	{"cuttack", "Cuttack"}, {"deogarh", "Deogarh"}, {"dhenkanal", "Dhenkanal"},
	{"gajapati", "Gajapati"}, {"ganjam", "Ganjam"}, {"jagatsinghpur", "Jagatsinghpur"},
	{"jajpur", "Jajpur"}, {"jharsuguda", "Jharsuguda"}, {"kalahandi", "Kalahandi"},
	{"kandhamal", "Kandhamal"}, {"kendrapara", "Kendrapara"}, {"keonjhar", "Keonjhar"},
	{"khordha", "Khordha"}, {"koraput", "Koraput"}, {"malkangiri", "Malkangiri"},
	{"mayurbhanj", "Mayurbhanj"}, {"nabarangpur", "Nabarangpur"}, {"nayagarh", "Nayagarh"},
	{"nuapada", "Nuapada"}, {"puri", "Puri"}, {"rayagada", "Rayagada"},
	{"sambalpur", "Sambalpur"}, {"sonepur", "Sonepur"}, {"sundargarh", "Sundargarh"},
}

var CropChoices = []Choice{
	{"rice", "Rice"}, {"maize", "Maize"}, {"wheat", "Wheat"},
	{"groundnut", "Groundnut"}, {"mung", "Mung"}, {"cotton", "Cotton"},
	{"sugarcane", "Sugarcane"}, {"turmeric", "Turmeric"},
}

var SeasonChoices = []Choice{
	{"kharif", "Kharif"}, {"rabi", "Rabi"}, {"zaid", "Zaid"},
}

var IrrigationChoices = []Choice{
	{"none", "None/Rainfed"}, {"tubewell", "Tube well"},
	{"canal", "Canal"}, {"lift", "Lift"}, {"drip", "Drip"},
}

var SoilChoices = []Choice{
	{"alluvial", "Alluvial"}, {"lateritic", "Lateritic"},
	{"red_black", "Red & Black"}, {"saline", "Saline"},
}

var SeedChoices = []Choice{
	{"local", "Local"}, {"hyv", "HYV"}, {"hybrid", "Hybrid"},
}

// Choices maps each enum field name to its allowed values.
var Choices = map[string][]Choice{
	FieldDistrict:    DistrictChoices,
	FieldCrop:        CropChoices,
	FieldSeason:      SeasonChoices,
	FieldIrrigation:  IrrigationChoices,
	FieldSoilType:    SoilChoices,
	FieldSeedVariety: SeedChoices,
}

// ValidChoice reports whether value is declared for field.
func ValidChoice(field, value string) bool {
	for _, c := range Choices[field] {
		if c.Value == value {
			return true
		}
	}
	return false
}

// DisplayLabels resolves enum values to their human-readable labels.
type DisplayLabels struct{}

// Label returns the display label for value, or value itself when unknown.
func (DisplayLabels) Label(field, value string) string {
	for _, c := range Choices[field] {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
