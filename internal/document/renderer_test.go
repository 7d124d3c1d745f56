package document

import (
	"testing"
	"time"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/barcode"
	"trace-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLot() (*models.Lot, *models.Farm) {
	lot := &models.Lot{
		ID:              1,
		LotNumber:       "AV-240301-001",
		FarmID:          1,
		HarvestDate:     time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		InitialQuantity: 1000,
		CurrentStatus:   models.StatusHarvested,
	}
	farm := &models.Farm{
		ID:       1,
		Name:     "Ferme Atlas",
		Location: "Marrakech",
		Code:     "FA-001",
		Active:   true,
	}
	return lot, farm
}

func TestRenderLotDocument(t *testing.T) {
	r := NewRenderer(barcode.NewRenderer(), "Atlas Verte")
	lot, farm := testLot()

	activities := []*models.LotActivity{
		{ID: 1, LotID: 1, ActivityType: models.ActivityHarvest, DatePerformed: lot.HarvestDate, Quantity: 1000, OperatorName: "Op1"},
		{ID: 2, LotID: 1, ActivityType: models.ActivityShip, DatePerformed: lot.HarvestDate.AddDate(0, 0, 4), Quantity: 1000, OperatorName: "Op2"},
	}

	data, err := r.Render(lot, farm, activities)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderWithNoActivities(t *testing.T) {
	r := NewRenderer(barcode.NewRenderer(), "")
	lot, farm := testLot()

	data, err := r.Render(lot, farm, nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderFailsWhenBarcodeFails(t *testing.T) {
	r := NewRenderer(barcode.NewRenderer(), "")
	lot, farm := testLot()
	lot.LotNumber = ""

	_, err := r.Render(lot, farm, nil)
	require.Error(t, err)

	var re *apperrors.RenderError
	assert.ErrorAs(t, err, &re)
}
