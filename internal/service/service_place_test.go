package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/mock"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }

func samplePlace() models.Place {
	return models.Place{
		PlaceID:   testPlaceID,
		Name:      "Café Central",
		Type:      "cafe",
		Address:   "Rua A, 1",
		Phone:     "+55 11 5555-0000",
		Rating:    floatPtr(4.5),
		Latitude:  floatPtr(-23.55),
		Longitude: floatPtr(-46.63),
	}
}

func newTestPlaceSvc(t *testing.T, ctrl *gomock.Controller) (PlaceService, *mock.MockPlaceRepository) {
	t.Helper()
	repo := mock.NewMockPlaceRepository(ctrl)
	return NewPlaceService(repo, logger.Nop()), repo
}

func TestPlaceService_CreatePlace_IgnoresClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPlaceSvc(t, ctrl)
	repo.EXPECT().CreatePlace(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Place) (models.Place, error) {
			assert.Empty(t, p.PlaceID)
			p.PlaceID = testPlaceID
			return p, nil
		},
	)

	in := samplePlace()
	in.PlaceID = "client-chosen"
	got, err := svc.CreatePlace(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, testPlaceID, got.PlaceID)
}

func TestPlaceService_ListPlaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPlaceSvc(t, ctrl)
	filter := models.PlaceFilter{Type: "cafe"}

	gomock.InOrder(
		repo.EXPECT().ListPlaces(gomock.Any(), filter).Return([]models.Place{samplePlace()}, nil),
		repo.EXPECT().ListPlaces(gomock.Any(), filter).Return([]models.Place{}, nil),
		repo.EXPECT().ListPlaces(gomock.Any(), filter).Return(nil, store.ErrExecutingQuery),
	)

	places, err := svc.ListPlaces(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, places, 1)

	_, err = svc.ListPlaces(context.Background(), filter)
	assert.ErrorIs(t, err, ErrNoPlacesFound)

	_, err = svc.ListPlaces(context.Background(), filter)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestPlaceService_UpdatePlace(t *testing.T) {
	changed := samplePlace()
	changed.Rating = floatPtr(3)

	tests := []struct {
		name       string
		input      models.Place
		setup      func(repo *mock.MockPlaceRepository)
		wantResult models.UpdateResult
		wantErr    error
	}{
		{
			name:  "not matched",
			input: samplePlace(),
			setup: func(repo *mock.MockPlaceRepository) {
				repo.EXPECT().FindPlaceByID(gomock.Any(), testPlaceID).Return(models.Place{}, store.ErrPlaceNotFound)
			},
			wantErr: store.ErrPlaceNotFound,
		},
		{
			name:  "matched and unchanged",
			input: samplePlace(),
			setup: func(repo *mock.MockPlaceRepository) {
				repo.EXPECT().FindPlaceByID(gomock.Any(), testPlaceID).Return(samplePlace(), nil)
			},
			wantResult: models.UpdateResultUnchanged,
		},
		{
			name:  "matched and changed",
			input: changed,
			setup: func(repo *mock.MockPlaceRepository) {
				repo.EXPECT().FindPlaceByID(gomock.Any(), testPlaceID).Return(samplePlace(), nil)
				repo.EXPECT().UpdatePlace(gomock.Any(), changed).Return(changed, nil)
			},
			wantResult: models.UpdateResultUpdated,
		},
		{
			name:  "row removed between read and write",
			input: changed,
			setup: func(repo *mock.MockPlaceRepository) {
				repo.EXPECT().FindPlaceByID(gomock.Any(), testPlaceID).Return(samplePlace(), nil)
				repo.EXPECT().UpdatePlace(gomock.Any(), changed).Return(models.Place{}, store.ErrPlaceNotFound)
			},
			wantErr: store.ErrPlaceNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, repo := newTestPlaceSvc(t, ctrl)
			tc.setup(repo)

			_, result, err := svc.UpdatePlace(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
		})
	}
}

func TestPlaceService_DeletePlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPlaceSvc(t, ctrl)
	gomock.InOrder(
		repo.EXPECT().DeletePlace(gomock.Any(), testPlaceID).Return(nil),
		repo.EXPECT().DeletePlace(gomock.Any(), testPlaceID).Return(store.ErrPlaceNotFound),
	)

	require.NoError(t, svc.DeletePlace(context.Background(), testPlaceID))
	assert.ErrorIs(t, svc.DeletePlace(context.Background(), testPlaceID), store.ErrPlaceNotFound)
}

func TestPlaceService_Locations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPlaceSvc(t, ctrl)

	noCoords := samplePlace()
	noCoords.Name = "Nowhere"
	noCoords.Latitude = nil

	gomock.InOrder(
		repo.EXPECT().ListPlaces(gomock.Any(), models.PlaceFilter{}).Return([]models.Place{samplePlace(), noCoords}, nil),
		repo.EXPECT().ListPlaces(gomock.Any(), models.PlaceFilter{}).Return([]models.Place{}, nil),
	)

	markers, err := svc.Locations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Marker{{Name: "Café Central", Lat: -23.55, Lon: -46.63}}, markers)

	markers, err = svc.Locations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, markers)
	assert.Empty(t, markers)
}
