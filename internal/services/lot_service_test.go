package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lotNumberPattern = regexp.MustCompile(`^AV-\d{6}-\d{3}$`)

func newLotServiceForTest() (*LotService, *fakeLotStore, *fakeActivityStore, *fakeFarmStore) {
	lots := newFakeLotStore()
	activities := newFakeActivityStore(lots)
	farms := newFakeFarmStore()
	return NewLotService(lots, activities, farms), lots, activities, farms
}

func TestGenerateLotNumberFormat(t *testing.T) {
	svc, _, _, _ := newLotServiceForTest()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	number, err := svc.GenerateLotNumber(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, "AV-240301-001", number)
	assert.Regexp(t, lotNumberPattern, number)
}

func TestGenerateLotNumberSequencesAcrossFarms(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	atlas := farms.add("Ferme Atlas", "FA-001")
	rif := farms.add("Ferme Rif", "FR-002")

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	first, err := svc.CreateLot(ctx, &models.CreateLotRequest{
		FarmID: atlas.ID, HarvestDate: date, InitialQuantity: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, "AV-240301-001", first.LotNumber)

	// The daily sequence is shared by every farm, not per farm.
	second, err := svc.CreateLot(ctx, &models.CreateLotRequest{
		FarmID: rif.ID, HarvestDate: date, InitialQuantity: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "AV-240301-002", second.LotNumber)

	// A different harvest date starts its own sequence.
	other, err := svc.GenerateLotNumber(ctx, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "AV-240302-001", other)
}

func TestGenerateLotNumberExhaustedSequence(t *testing.T) {
	svc, lots, _, _ := newLotServiceForTest()
	lots.seed("AV-240301", 999)

	_, err := svc.GenerateLotNumber(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCreateLotRecordsInitialHarvestActivity(t *testing.T) {
	svc, _, activities, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lot, err := svc.CreateLot(context.Background(), &models.CreateLotRequest{
		FarmID:          farm.ID,
		HarvestDate:     date,
		InitialQuantity: 240,
		OperatorName:    "Hassan",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusHarvested, lot.CurrentStatus)
	assert.Equal(t, "Ferme Atlas", lot.FarmName)
	assert.Equal(t, "FA-001", lot.FarmCode)

	history, err := svc.ListActivities(context.Background(), lot.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.ActivityHarvest, history[0].ActivityType)
	assert.Equal(t, 240, history[0].Quantity)
	assert.Equal(t, "Hassan", history[0].OperatorName)
	assert.Len(t, activities.activities, 1)
}

func TestCreateLotWithExplicitNumber(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")

	lot, err := svc.CreateLot(context.Background(), &models.CreateLotRequest{
		FarmID:          farm.ID,
		LotNumber:       "AV-240301-042",
		HarvestDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "AV-240301-042", lot.LotNumber)
}

func TestCreateLotRoundTrip(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	ctx := context.Background()

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.CreateLot(ctx, &models.CreateLotRequest{
		FarmID:          farm.ID,
		HarvestDate:     date,
		InitialQuantity: 1000,
		Notes:           "early harvest",
	})
	require.NoError(t, err)

	got, err := svc.GetLot(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.LotNumber, got.LotNumber)
	assert.Equal(t, farm.ID, got.FarmID)
	assert.True(t, got.HarvestDate.Equal(date))
	assert.Equal(t, 1000, got.InitialQuantity)
	assert.Equal(t, "early harvest", got.Notes)

	byNumber, err := svc.GetLotByNumber(ctx, created.LotNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNumber.ID)
}

func TestCreateLotValidation(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		req  models.CreateLotRequest
	}{
		{"missing farm", models.CreateLotRequest{HarvestDate: date, InitialQuantity: 10}},
		{"zero quantity", models.CreateLotRequest{FarmID: farm.ID, HarvestDate: date}},
		{"missing harvest date", models.CreateLotRequest{FarmID: farm.ID, InitialQuantity: 10}},
		{"unknown status", models.CreateLotRequest{FarmID: farm.ID, HarvestDate: date, InitialQuantity: 10, CurrentStatus: "lost"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateLot(context.Background(), &tc.req)
			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestCreateLotUnknownFarm(t *testing.T) {
	svc, _, _, _ := newLotServiceForTest()

	_, err := svc.CreateLot(context.Background(), &models.CreateLotRequest{
		FarmID:          99,
		HarvestDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 10,
	})
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestRecordActivityMovesStatus(t *testing.T) {
	cases := []struct {
		activityType string
		wantStatus   string
	}{
		{models.ActivityHarvest, models.StatusHarvested},
		{models.ActivityPackage, models.StatusPackaged},
		{models.ActivityCool, models.StatusCooled},
		{models.ActivityShip, models.StatusShipped},
		{models.ActivityDeliver, models.StatusDelivered},
	}

	for _, tc := range cases {
		t.Run(tc.activityType, func(t *testing.T) {
			svc, _, _, farms := newLotServiceForTest()
			farm := farms.add("Ferme Atlas", "FA-001")
			ctx := context.Background()

			lot, err := svc.CreateLot(ctx, &models.CreateLotRequest{
				FarmID:          farm.ID,
				HarvestDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				InitialQuantity: 100,
			})
			require.NoError(t, err)

			_, err = svc.RecordActivity(ctx, lot.ID, &models.RecordActivityRequest{
				ActivityType:  tc.activityType,
				DatePerformed: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
				Quantity:      100,
				OperatorName:  "Hassan",
			})
			require.NoError(t, err)

			got, err := svc.GetLot(ctx, lot.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.CurrentStatus)
		})
	}
}

// Any activity type is accepted in any current status. A harvest recorded
// after a delivery moves the lot back to harvested: the last inserted
// activity always wins.
func TestRecordActivityHasNoTransitionGuard(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	ctx := context.Background()

	lot, err := svc.CreateLot(ctx, &models.CreateLotRequest{
		FarmID:          farm.ID,
		HarvestDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 100,
	})
	require.NoError(t, err)

	for _, at := range []string{models.ActivityDeliver, models.ActivityHarvest} {
		_, err = svc.RecordActivity(ctx, lot.ID, &models.RecordActivityRequest{
			ActivityType:  at,
			DatePerformed: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Quantity:      100,
			OperatorName:  "Hassan",
		})
		require.NoError(t, err)
	}

	got, err := svc.GetLot(ctx, lot.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusHarvested, got.CurrentStatus)

	history, err := svc.ListActivities(ctx, lot.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3) // implicit harvest + deliver + harvest
}

func TestRecordActivityValidation(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	ctx := context.Background()

	lot, err := svc.CreateLot(ctx, &models.CreateLotRequest{
		FarmID:          farm.ID,
		HarvestDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 100,
	})
	require.NoError(t, err)

	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		req  models.RecordActivityRequest
	}{
		{"unknown type", models.RecordActivityRequest{ActivityType: "inspect", DatePerformed: date, Quantity: 1, OperatorName: "H"}},
		{"zero quantity", models.RecordActivityRequest{ActivityType: models.ActivityShip, DatePerformed: date, OperatorName: "H"}},
		{"missing operator", models.RecordActivityRequest{ActivityType: models.ActivityShip, DatePerformed: date, Quantity: 1}},
		{"missing date", models.RecordActivityRequest{ActivityType: models.ActivityShip, Quantity: 1, OperatorName: "H"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordActivity(ctx, lot.ID, &tc.req)
			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestRecordActivityUnknownLot(t *testing.T) {
	svc, _, _, _ := newLotServiceForTest()

	_, err := svc.RecordActivity(context.Background(), 42, &models.RecordActivityRequest{
		ActivityType:  models.ActivityShip,
		DatePerformed: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Quantity:      10,
		OperatorName:  "Hassan",
	})
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestUpdateLotPatchesMetadataOnly(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	ctx := context.Background()

	lot, err := svc.CreateLot(ctx, &models.CreateLotRequest{
		FarmID:          farm.ID,
		HarvestDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 100,
	})
	require.NoError(t, err)

	qty := 120
	notes := "re-weighed at intake"
	updated, err := svc.UpdateLot(ctx, lot.ID, &models.UpdateLotRequest{
		InitialQuantity: &qty,
		Notes:           &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, 120, updated.InitialQuantity)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, lot.LotNumber, updated.LotNumber)
	assert.Equal(t, models.StatusHarvested, updated.CurrentStatus)
}

func TestStatsCountsByStatus(t *testing.T) {
	svc, _, _, farms := newLotServiceForTest()
	farm := farms.add("Ferme Atlas", "FA-001")
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	first, err := svc.CreateLot(ctx, &models.CreateLotRequest{FarmID: farm.ID, HarvestDate: date, InitialQuantity: 10})
	require.NoError(t, err)
	_, err = svc.CreateLot(ctx, &models.CreateLotRequest{FarmID: farm.ID, HarvestDate: date, InitialQuantity: 20})
	require.NoError(t, err)

	_, err = svc.RecordActivity(ctx, first.ID, &models.RecordActivityRequest{
		ActivityType:  models.ActivityShip,
		DatePerformed: date.AddDate(0, 0, 3),
		Quantity:      10,
		OperatorName:  "Hassan",
	})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalLots)
	assert.Equal(t, 1, stats.ByStatus[models.StatusShipped])
	assert.Equal(t, 1, stats.ByStatus[models.StatusHarvested])
}
