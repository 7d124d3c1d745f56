package services

import (
	"context"
	"testing"

	"trace-backend/internal/apperrors"
	"trace-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFarm(t *testing.T) {
	svc := NewFarmService(newFakeFarmStore())

	farm, err := svc.CreateFarm(context.Background(), &models.CreateFarmRequest{
		Name:     "Ferme Atlas",
		Location: "Azrou",
		Code:     "FA-001",
	})
	require.NoError(t, err)

	assert.NotZero(t, farm.ID)
	assert.Equal(t, "FA-001", farm.Code)
	assert.True(t, farm.Active)
}

func TestCreateFarmDuplicateCode(t *testing.T) {
	store := newFakeFarmStore()
	store.add("Ferme Atlas", "FA-001")
	svc := NewFarmService(store)

	_, err := svc.CreateFarm(context.Background(), &models.CreateFarmRequest{
		Name:     "Another Farm",
		Location: "Ifrane",
		Code:     "FA-001",
	})
	require.Error(t, err)

	var ce *apperrors.ConflictError
	assert.ErrorAs(t, err, &ce)
}

func TestCreateFarmValidation(t *testing.T) {
	svc := NewFarmService(newFakeFarmStore())

	_, err := svc.CreateFarm(context.Background(), &models.CreateFarmRequest{Code: "FA-001"})
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.CreateFarm(context.Background(), &models.CreateFarmRequest{Name: "Ferme Atlas"})
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateFarmKeepsCode(t *testing.T) {
	store := newFakeFarmStore()
	farm := store.add("Ferme Atlas", "FA-001")
	svc := NewFarmService(store)

	inactive := false
	updated, err := svc.UpdateFarm(context.Background(), farm.ID, &models.UpdateFarmRequest{
		Name:   "Ferme Atlas SARL",
		Active: &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ferme Atlas SARL", updated.Name)
	assert.Equal(t, "FA-001", updated.Code)
	assert.False(t, updated.Active)
}

func TestDeleteFarmNotFound(t *testing.T) {
	svc := NewFarmService(newFakeFarmStore())

	err := svc.DeleteFarm(context.Background(), 7)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
