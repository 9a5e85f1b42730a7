package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports/mocks"
)

func TestLocationService_Create_Success(t *testing.T) {
	repo := mocks.NewMockLocationRepo(t)
	svc := NewLocationService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	location, err := svc.Create(context.Background(), domain.CreateLocationInput{
		Name:     "Main Hall",
		Address:  "1 Center St",
		Capacity: 200,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, location.ID)
	assert.Equal(t, "Main Hall", location.Name)
}

func TestLocationService_Create_Invalid(t *testing.T) {
	svc := NewLocationService(mocks.NewMockLocationRepo(t))

	cases := []domain.CreateLocationInput{
		{Name: "", Address: "1 Center St", Capacity: 10},
		{Name: "Hall", Address: "", Capacity: 10},
		{Name: "Hall", Address: "1 Center St", Capacity: 0},
	}
	for _, input := range cases {
		_, err := svc.Create(context.Background(), input)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestLocationService_Update_Success(t *testing.T) {
	repo := mocks.NewMockLocationRepo(t)
	svc := NewLocationService(repo)

	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	location, err := svc.Update(context.Background(), "loc-1", domain.UpdateLocationInput{
		Name:     "Renamed Hall",
		Address:  "2 Center St",
		Capacity: 150,
	})

	require.NoError(t, err)
	assert.Equal(t, "loc-1", location.ID)
	assert.Equal(t, 150, location.Capacity)
}

func TestLocationService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockLocationRepo(t)
	svc := NewLocationService(repo)

	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrLocationNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateLocationInput{
		Name:     "Hall",
		Address:  "1 Center St",
		Capacity: 10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestLocationService_Delete_HasEvents(t *testing.T) {
	repo := mocks.NewMockLocationRepo(t)
	svc := NewLocationService(repo)

	repo.EXPECT().Delete(mock.Anything, "loc-1").Return(domain.ErrLocationHasEvents)

	err := svc.Delete(context.Background(), "loc-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLocationHasEvents)
}

func TestLocationService_List(t *testing.T) {
	repo := mocks.NewMockLocationRepo(t)
	svc := NewLocationService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Location{{ID: "loc-1"}}, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
