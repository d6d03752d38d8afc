package yield

// Codes are arbitrary but must stay stable: trained estimators depend on them.
var (
	cropCodes = map[string]int{
		"rice": 1, "maize": 2, "wheat": 3, "groundnut": 4,
		"mung": 5, "cotton": 6, "sugarcane": 7, "turmeric": 8,
	}
	districtCodes = map[string]int{
		"angul": 1, "balangir": 2, "balasore": 3, "bargarh": 4, "bhadrak": 5, "boudh": 6,
		"cuttack": 7, "deogarh": 8, "dhenkanal": 9, "gajapati": 10, "ganjam": 11, "jagatsinghpur": 12,
		"jajpur": 13, "jharsuguda": 14, "kalahandi": 15, "kandhamal": 16, "kendrapara": 17, "keonjhar": 18,
		"khordha": 19, "koraput": 20, "malkangiri": 21, "mayurbhanj": 22, "nabarangpur": 23, "nayagarh": 24,
		"nuapada": 25, "puri": 26, "rayagada": 27, "sambalpur": 28, "sonepur": 29, "sundargarh": 30,
	}
	seasonCodes     = map[string]int{"kharif": 1, "rabi": 2, "zaid": 3}
	irrigationCodes = map[string]int{"none": 0, "drip": 1, "tubewell": 2, "canal": 3, "lift": 4}
	seedCodes       = map[string]int{"local": 0, "hyv": 1, "hybrid": 2}
	soilCodes       = map[string]int{"alluvial": 1, "red_black": 2, "lateritic": 3, "saline": 4}
)

// kg/ha
const defaultBaseYield = 2500.0

var baseYields = map[string]float64{
	"rice": 3200, "maize": 4200, "wheat": 3500, "groundnut": 2200,
	"mung": 1100, "cotton": 1600, "sugarcane": 75000, "turmeric": 5200,
}

var (
	irrigationFactor = map[string]float64{
		"drip": 1.25, "tubewell": 1.15, "canal": 1.15, "lift": 1.08, "none": 0.85,
	}
	seedFactor = map[string]float64{"hybrid": 1.20, "hyv": 1.10, "local": 0.95}
	soilFactor = map[string]float64{
		"alluvial": 1.05, "red_black": 1.02, "lateritic": 0.98, "saline": 0.85,
	}
	seasonFactor = map[string]float64{"kharif": 1.05, "rabi": 1.10, "zaid": 0.95}
)

const (
	soilHealthCardFactor = 1.05
	pestFactor           = 0.92
)

var fertilizerAdvice = map[string]string{
	"rice":      "Apply 120:60:40 NPK kg/ha in 3 splits - 50% basal, 25% tillering, 25% panicle stage",
	"maize":     "Apply 150:75:40 NPK kg/ha - 1/3 at sowing, 1/3 at knee-high, 1/3 at tasseling",
	"wheat":     "Apply 120:60:40 NPK kg/ha in 3 splits based on soil test recommendations",
	"groundnut": "Apply 20:60:40 NPK kg/ha - groundnut fixes nitrogen naturally",
	"cotton":    "Apply 150:75:75 NPK kg/ha in splits with micronutrients",
	"sugarcane": "Apply 300:150:150 NPK kg/ha in 4 splits throughout growing season",
}

const (
	fertilizerGeneric    = "Apply balanced NPK fertilizer as per soil test in 2-3 splits"
	fertilizerNoSoilTest = "Apply balanced NPK fertilizer (consult agriculture officer) and get soil testing done immediately"
)

const (
	actionIrrigateUrgent = "URGENT: Install irrigation system immediately - these crops need consistent water supply for survival and yield"
	actionPestControl    = "IMMEDIATE: Apply integrated pest management - spray neem oil and set up pheromone traps within 2 days"
	actionSoilTest       = "HIGH PRIORITY: Get soil health card from nearest agriculture office to optimize fertilizer application"
	actionDrip           = "CRITICAL: Install drip irrigation system to increase water efficiency and boost yield by 20-25%"
	actionMoisture       = "OPTIMIZE: Monitor soil moisture daily and apply irrigation at critical crop growth stages"

	actionUpgradeSeedFmt = "UPGRADE: Switch to hybrid or HYV %s varieties for 15-20%% higher yield next season"
	actionKharifWeather  = "WEATHER PREP: Monitor weather forecasts and provide drainage during heavy rains to prevent waterlogging"
	actionRabiTiming     = "TIMING: Ensure timely sowing and harvest to avoid heat stress and maximize market prices"
	actionFieldCare      = "FIELD MANAGEMENT: Maintain proper plant spacing, weed control, and regular field monitoring for diseases"
)

// kg/ha, keyed by crop only.
const defaultDistrictAverage = 2200.0

var cropAverages = map[string]float64{
	"rice": 2800, "maize": 3500, "wheat": 3000, "groundnut": 1900,
	"mung": 950, "cotton": 1400, "sugarcane": 68000, "turmeric": 4500,
}

var averageSeasonFactor = map[string]float64{"kharif": 0.95, "rabi": 1.05, "zaid": 0.90}
