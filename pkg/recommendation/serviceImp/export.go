package serviceImp

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	repo "krishi/pkg/recommendation/repository"
)

const exportSheet = "Recommendations"

var exportHeader = []any{
	"Recommendation ID", "Created", "District", "Crop", "Season", "Field area (ha)",
	"Predicted yield (kg/ha)", "Confidence", "Estimated gain (%)",
	"Action 1", "Action 2", "Action 3", "Reasoning",
}

func (s *recSvc) Export(w io.Writer, f repo.Filter) error {
	recs, err := s.r.List(f)
	if err != nil {
		return err
	}

	x := excelize.NewFile()
	defer x.Close()
	if err := x.SetSheetName(x.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := x.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range recs {
		row := []any{r.RecommendationID, r.CreatedAt.Format("2006-01-02 15:04")}
		if in := r.FarmInput; in != nil {
			row = append(row, in.District, in.Crop, in.Season, in.FieldArea)
		} else {
			row = append(row, "", "", "", 0)
		}
		row = append(row, r.PredictedYield, r.ConfidenceInterval, r.EstimatedGain,
			r.Action1, r.Action2, r.Action3, r.Reasoning)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	s.log.Debug("recommendations exported", "rows", len(recs), "district", f.District, "crop", f.Crop)
	_, err = x.WriteTo(w)
	return err
}
