package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"trace-backend/internal/timeutil"
)

// ReportService exports the traceability register for auditors.
type ReportService struct {
	Lots       LotStore
	Activities ActivityStore
}

func NewReportService(lots LotStore, activities ActivityStore) *ReportService {
	return &ReportService{Lots: lots, Activities: activities}
}

// GenerateLotsCSV renders one row per lot with its latest recorded activity.
// filter narrows by status ("all" or empty means everything).
func (s *ReportService) GenerateLotsCSV(ctx context.Context, filter string) ([]byte, error) {
	lots, err := s.Lots.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Lot Number", "Farm", "Farm Code", "Status", "Harvest Date",
		"Initial Quantity", "Activities", "Last Activity", "Last Operator", "Last Activity Date"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, lot := range lots {
		if filter != "" && filter != "all" && lot.CurrentStatus != filter {
			continue
		}

		lastType, lastOperator, lastDate := "", "", ""
		count := 0
		activities, err := s.Activities.ListByLot(ctx, lot.ID)
		if err == nil {
			count = len(activities)
			if count > 0 {
				// ListByLot returns insertion order; the final row is the
				// one current_status was derived from.
				last := activities[count-1]
				lastType = last.ActivityType
				lastOperator = last.OperatorName
				lastDate = timeutil.ToLocal(last.DatePerformed).Format(timeutil.DateLayout)
			}
		}

		row := []string{
			lot.LotNumber,
			lot.FarmName,
			lot.FarmCode,
			lot.CurrentStatus,
			timeutil.ToLocal(lot.HarvestDate).Format(timeutil.DateLayout),
			fmt.Sprintf("%d", lot.InitialQuantity),
			fmt.Sprintf("%d", count),
			lastType,
			lastOperator,
			lastDate,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
