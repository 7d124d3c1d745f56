package services

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"trace-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLotsCSV(t *testing.T) {
	lotSvc, lots, activities, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	lot, err := lotSvc.CreateLot(ctx, &models.CreateLotRequest{
		FarmID: farm.ID, HarvestDate: date, InitialQuantity: 100, OperatorName: "Hassan",
	})
	require.NoError(t, err)
	_, err = lotSvc.RecordActivity(ctx, lot.ID, &models.RecordActivityRequest{
		ActivityType:  models.ActivityShip,
		DatePerformed: date.AddDate(0, 0, 4),
		Quantity:      100,
		OperatorName:  "Karim",
	})
	require.NoError(t, err)

	svc := NewReportService(lots, activities)
	data, err := svc.GenerateLotsCSV(ctx, "")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, lot.LotNumber, row[0])
	assert.Equal(t, "Ferme Atlas", row[1])
	assert.Equal(t, "FA-001", row[2])
	assert.Equal(t, models.StatusShipped, row[3])
	assert.Equal(t, "2", row[6]) // harvest + ship
	assert.Equal(t, models.ActivityShip, row[7])
	assert.Equal(t, "Karim", row[8])
}

func TestGenerateLotsCSVStatusFilter(t *testing.T) {
	lotSvc, lots, activities, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	shipped, err := lotSvc.CreateLot(ctx, &models.CreateLotRequest{FarmID: farm.ID, HarvestDate: date, InitialQuantity: 10})
	require.NoError(t, err)
	_, err = lotSvc.CreateLot(ctx, &models.CreateLotRequest{FarmID: farm.ID, HarvestDate: date, InitialQuantity: 20})
	require.NoError(t, err)
	_, err = lotSvc.RecordActivity(ctx, shipped.ID, &models.RecordActivityRequest{
		ActivityType:  models.ActivityShip,
		DatePerformed: date.AddDate(0, 0, 2),
		Quantity:      10,
		OperatorName:  "Karim",
	})
	require.NoError(t, err)

	svc := NewReportService(lots, activities)

	data, err := svc.GenerateLotsCSV(ctx, models.StatusShipped)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, shipped.LotNumber, records[1][0])

	// "all" and empty behave the same.
	data, err = svc.GenerateLotsCSV(ctx, "all")
	require.NoError(t, err)
	records, err = csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}
