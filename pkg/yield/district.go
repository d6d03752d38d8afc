package yield

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DistrictTable holds per-district crop averages in kg/ha: district -> crop -> average.
type DistrictTable map[string]map[string]float64

func (t DistrictTable) lookup(district, crop string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t[district][crop]
	return v, ok
}

// LoadDistrictAverages reads the first sheet of an xlsx workbook with a
// header row naming the district, crop and average columns.
func LoadDistrictAverages(path string) (DistrictTable, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open district averages: %w", err)
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("district averages %s: empty sheet", path)
	}

	norm := func(s string) string {
		s = strings.TrimPrefix(strings.TrimSpace(s), "\uFEFF")
		return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
	}
	col := map[string]int{}
	for i, h := range rows[0] {
		col[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := col[k]; ok {
				return idx
			}
		}
		return -1
	}
	cDistrict := findAny("district")
	cCrop := findAny("crop")
	cAvg := findAny("average", "avg", "average_yield", "yield")
	if cDistrict == -1 || cCrop == -1 || cAvg == -1 {
		return nil, fmt.Errorf("district averages %s: need district, crop, average columns; found %v", path, rows[0])
	}

	t := DistrictTable{}
	for _, rec := range rows[1:] {
		get := func(idx int) string {
			if idx >= len(rec) {
				return ""
			}
			return rec[idx]
		}
		d, c := norm(get(cDistrict)), norm(get(cCrop))
		avg, err := strconv.ParseFloat(strings.TrimSpace(get(cAvg)), 64)
		if d == "" || c == "" || err != nil || avg <= 0 {
			continue
		}
		if t[d] == nil {
			t[d] = map[string]float64{}
		}
		t[d][c] = avg
	}
	return t, nil
}

// DistrictAverage is the reference yield shown next to a prediction. Without
// a per-district table the district does not change the result.
func (e *Engine) DistrictAverage(district, crop, season string) float64 {
	avg, ok := e.districts.lookup(district, crop)
	if !ok {
		avg = CropAverage(crop)
	}
	return avg * factor(averageSeasonFactor, season)
}

// CropAverage is the crop-level reference yield before any season adjustment.
func CropAverage(crop string) float64 {
	if v, ok := cropAverages[crop]; ok {
		return v
	}
	return defaultDistrictAverage
}
