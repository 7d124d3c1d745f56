// Package document composes printable lot traceability reports (PDF) from a
// lot, its farm, and its activity history.
package document

import (
	"bytes"
	"fmt"
	"sort"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"
	"trace-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// BarcodeRenderer is the slice of the barcode package the document needs.
type BarcodeRenderer interface {
	Render(lotNumber string) ([]byte, error)
}

type Renderer struct {
	Barcode BarcodeRenderer
	OrgName string
}

func NewRenderer(barcodeRenderer BarcodeRenderer, orgName string) *Renderer {
	if orgName == "" {
		orgName = "Produce Traceability"
	}
	return &Renderer{Barcode: barcodeRenderer, OrgName: orgName}
}

// Render produces the lot document: header, barcode, lot info block, the
// activity table in date_performed order, and signature blocks. An empty
// activity list renders an empty table, not an error.
func (r *Renderer) Render(lot *models.Lot, farm *models.Farm, activities []*models.LotActivity) ([]byte, error) {
	barcodePNG, err := r.Barcode.Render(lot.LotNumber)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - Lot Traceability Report", r.OrgName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// Barcode
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("lot-barcode", opts, bytes.NewReader(barcodePNG))
	pdf.ImageOptions("lot-barcode", 65, pdf.GetY(), 80, 24, false, opts, 0, "")
	pdf.Ln(28)

	// Lot Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Lot Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Lot Number: %s", lot.LotNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Status: %s", lot.CurrentStatus), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Farm: %s", farm.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Farm Code: %s", farm.Code), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Harvest Date: %s", lot.HarvestDate.Format("02-Jan-2006")), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Initial Quantity: %d", lot.InitialQuantity), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Activity table, chronological by date performed
	sorted := make([]*models.LotActivity, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DatePerformed.Before(sorted[j].DatePerformed)
	})

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Activity History", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(35, 7, "Activity", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Quantity", "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, "Operator", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Notes", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, a := range sorted {
		pdf.CellFormat(35, 7, a.ActivityType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, a.DatePerformed.Format("02-Jan-2006 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", a.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, a.OperatorName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, truncate(a.Notes, 28), "1", 1, "L", false, 0, "")
	}
	if len(sorted) == 0 {
		pdf.CellFormat(190, 7, "No activities recorded", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(12)

	// Signature blocks: last recorded operator and the receiving client.
	// "Last" follows insertion order, matching how current_status is derived.
	operator := ""
	lastID := -1
	for _, a := range activities {
		if a.ID > lastID {
			lastID = a.ID
			operator = a.OperatorName
		}
	}

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Operator: %s", operator), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, "Client:", "", 1, "L", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(80, 0, "", "B", 0, "", false, 0, "")
	pdf.CellFormat(15, 0, "", "", 0, "", false, 0, "")
	pdf.CellFormat(80, 0, "", "B", 1, "", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(95, 6, "Signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Signature", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.Render("pdf", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
