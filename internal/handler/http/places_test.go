package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-map-places/internal/app"
	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/validators"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func samplePlace() models.Place {
	return models.Place{
		PlaceID:   testPlaceID,
		Name:      "Café Central",
		Type:      "cafe",
		Address:   "Rua Augusta, 100",
		Phone:     "+55 11 5555-0100",
		Rating:    floatPtr(4.5),
		Latitude:  floatPtr(-23.55),
		Longitude: floatPtr(-46.63),
	}
}

const samplePlaceBody = `{"nome":"Café Central","tipo":"cafe","endereco":"Rua Augusta, 100",` +
	`"telefone":"+55 11 5555-0100","avaliacao":4.5,"latitude":-23.55,"longitude":-46.63}`

func newPlacesRouter(places service.PlaceService) http.Handler {
	return newTestHandler(&service.Services{PlaceService: places}).Init()
}

func TestListPlaces_Filters(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFilter models.PlaceFilter
	}{
		{name: "no filter", query: "", wantFilter: models.PlaceFilter{}},
		{name: "by type", query: "?tipo=cafe", wantFilter: models.PlaceFilter{Type: "cafe"}},
		{name: "by name prefix", query: "?nome=caf", wantFilter: models.PlaceFilter{NamePrefix: "caf"}},
		{name: "both", query: "?tipo=bar&nome=Bo", wantFilter: models.PlaceFilter{Type: "bar", NamePrefix: "Bo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter models.PlaceFilter
			router := newPlacesRouter(&mockPlaceService{
				listPlacesFn: func(_ context.Context, filter models.PlaceFilter) ([]models.Place, error) {
					gotFilter = filter
					return []models.Place{samplePlace()}, nil
				},
			})

			rec := doRequest(t, router, http.MethodGet, "/locais"+tt.query, "", nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantFilter, gotFilter)
		})
	}
}

func TestListPlaces_Empty(t *testing.T) {
	router := newPlacesRouter(&mockPlaceService{
		listPlacesFn: func(context.Context, models.PlaceFilter) ([]models.Place, error) {
			return nil, service.ErrNoPlacesFound
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/locais", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoPlacesFound, decodeErrorBody(t, rec).Message)
}

func TestCreatePlace(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router := newPlacesRouter(&mockPlaceService{
			createPlaceFn: func(_ context.Context, place models.Place) (models.Place, error) {
				want := samplePlace()
				want.PlaceID = ""
				assert.Equal(t, want, place)
				place.PlaceID = testPlaceID
				return place, nil
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/locais", samplePlaceBody, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"`+testPlaceID+`"}`, rec.Body.String())
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		router := newPlacesRouter(&mockPlaceService{
			createPlaceFn: func(context.Context, models.Place) (models.Place, error) {
				return models.Place{}, &validators.FieldError{Field: "latitude", Tag: "latitude"}
			},
		})

		rec := doRequest(t, router, http.MethodPost, "/locais", `{"nome":"x","latitude":91}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, app.ErrValidation, body.Error)
		assert.Equal(t, "latitude", body.Field)
	})
}

func TestGetPlace(t *testing.T) {
	router := newPlacesRouter(&mockPlaceService{
		getPlaceFn: func(_ context.Context, placeID string) (models.Place, error) {
			if placeID != testPlaceID {
				return models.Place{}, store.ErrPlaceNotFound
			}
			return samplePlace(), nil
		},
	})

	found := doRequest(t, router, http.MethodGet, "/locais/"+testPlaceID, "", nil)
	absent := doRequest(t, router, http.MethodGet, "/locais/"+testUserID, "", nil)

	require.Equal(t, http.StatusOK, found.Code)
	var got models.Place
	require.NoError(t, json.Unmarshal(found.Body.Bytes(), &got))
	assert.Equal(t, "Café Central", got.Name)

	assert.Equal(t, http.StatusNotFound, absent.Code)
	assert.Equal(t, app.MsgPlaceNotFound, decodeErrorBody(t, absent).Message)
}

func TestUpdatePlace(t *testing.T) {
	tests := []struct {
		name       string
		result     models.UpdateResult
		err        error
		wantStatus int
		wantHeader string
	}{
		{name: "updated", result: models.UpdateResultUpdated, wantStatus: http.StatusOK, wantHeader: "updated"},
		{name: "unchanged", result: models.UpdateResultUnchanged, wantStatus: http.StatusOK, wantHeader: "unchanged"},
		{name: "absent", err: store.ErrPlaceNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPlacesRouter(&mockPlaceService{
				updatePlaceFn: func(_ context.Context, place models.Place) (models.Place, models.UpdateResult, error) {
					assert.Equal(t, testPlaceID, place.PlaceID)
					if tt.err != nil {
						return models.Place{}, 0, tt.err
					}
					return samplePlace(), tt.result, nil
				},
			})

			rec := doRequest(t, router, http.MethodPut, "/locais/"+testPlaceID, samplePlaceBody, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get(updateResultHeader))
			if tt.result == models.UpdateResultUnchanged {
				assert.Contains(t, rec.Body.String(), app.MsgNoChanges)
			}
		})
	}
}

func TestDeletePlace_RepeatedDeleteStaysNotFound(t *testing.T) {
	deleted := false
	router := newPlacesRouter(&mockPlaceService{
		deletePlaceFn: func(context.Context, string) error {
			if deleted {
				return store.ErrPlaceNotFound
			}
			deleted = true
			return nil
		},
	})

	first := doRequest(t, router, http.MethodDelete, "/locais/"+testPlaceID, "", nil)
	second := doRequest(t, router, http.MethodDelete, "/locais/"+testPlaceID, "", nil)
	third := doRequest(t, router, http.MethodDelete, "/locais/"+testPlaceID, "", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"status":"removido"}`, first.Body.String())
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Equal(t, second.Body.String(), third.Body.String())
}
