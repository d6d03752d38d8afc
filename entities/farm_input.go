package entities

import "time"

type FarmInput struct {
	FarmInputID    uint      `gorm:"primaryKey" json:"farm_input_id"`
	District       string    `json:"district" gorm:"index"`
	Crop           string    `json:"crop" gorm:"index"`
	Season         string    `json:"season"` // kharif|rabi|zaid
	SowingDate     time.Time `json:"sowing_date"`
	FieldArea      float64   `json:"field_area"` // hectares
	Irrigation     string    `json:"irrigation"` // none|drip|tubewell|canal|lift
	SoilType       string    `json:"soil_type"`  // alluvial|lateritic|red_black|saline
	SoilHealthCard bool      `json:"soil_health_card"`
	SeedVariety    string    `json:"seed_variety"` // local|hyv|hybrid
	PestPresence   bool      `json:"pest_presence"`

	CreatedAt time.Time `json:"created_at"`

	// the foreign key lives on recommendations.farm_input_id
	Recommendation *Recommendation `gorm:"foreignKey:FarmInputID;references:FarmInputID;constraint:OnDelete:CASCADE" json:"-"`
}

func (f *FarmInput) String() string {
	return f.Crop + " - " + f.District + " - " + f.Season
}

type Contact struct {
	ContactID uint      `gorm:"primaryKey" json:"contact_id"`
	Name      string    `json:"name" gorm:"size:100"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject" gorm:"size:200"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
