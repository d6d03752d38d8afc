package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"krishi/entities"
	"krishi/pkg/farm/service"
	"krishi/pkg/validation"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) *FarmCtrl { return &FarmCtrl{svc} }

type createReq struct {
	District       string  `json:"district" validate:"required,district"`
	Crop           string  `json:"crop" validate:"required,crop"`
	Season         string  `json:"season" validate:"required,season"`
	SowingDate     string  `json:"sowing_date" validate:"required,isodate"`
	FieldArea      float64 `json:"field_area" validate:"gt=0"`
	Irrigation     string  `json:"irrigation" validate:"required,irrigation"`
	SoilType       string  `json:"soil_type" validate:"required,soil_type"`
	SoilHealthCard bool    `json:"soil_health_card"`
	SeedVariety    string  `json:"seed_variety" validate:"required,seed_variety"`
	PestPresence   bool    `json:"pest_presence"`
}

func (r createReq) farmInput() *entities.FarmInput {
	sown, _ := time.Parse(time.DateOnly, r.SowingDate)
	return &entities.FarmInput{
		District:       r.District,
		Crop:           r.Crop,
		Season:         r.Season,
		SowingDate:     sown,
		FieldArea:      r.FieldArea,
		Irrigation:     r.Irrigation,
		SoilType:       r.SoilType,
		SoilHealthCard: r.SoilHealthCard,
		SeedVariety:    r.SeedVariety,
		PestPresence:   r.PestPresence,
	}
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(req); err != nil {
		return validation.Error(c, err)
	}
	rec, err := h.svc.Submit(req.farmInput())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error generating recommendation. Please try again."})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	f, err := h.svc.Get(uint(id))
	if errors.Is(err, service.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

// Options lists the form choices per field.
func (h *FarmCtrl) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, entities.Choices)
}
