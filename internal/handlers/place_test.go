package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/pawpals-api/internal/models"
	"github.com/sbilibin2017/pawpals-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlaceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlaceCreator(ctrl)
	userID := uuid.New()

	tests := []struct {
		name         string
		inputBody    string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: `{"name":"Tiergarten","type":"park","address_city":"Berlin","rating":4.46,"hours_of_operation":{"mon":"8-20"},"images_urls":["a.jpg"]}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, p *models.PlaceDB) (*models.PlaceDB, error) {
						assert.Equal(t, "Tiergarten", p.Name)
						assert.Equal(t, models.PlaceTypePark, p.Type)
						assert.True(t, p.Rating.Valid)
						assert.Equal(t, "4.46", p.Rating.Decimal.String())
						assert.Equal(t, "8-20", p.HoursOfOperation["mon"])
						assert.Equal(t, []string{"a.jpg"}, []string(p.ImagesURLs))
						p.PlaceID = uuid.New()
						return p, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing type",
			inputBody:    `{"name":"Tiergarten"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown type",
			inputBody:    `{"name":"Zoo","type":"zoo"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "rating out of range",
			inputBody: `{"name":"Cafe","type":"cafe","rating":7}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
					Return(nil, fmt.Errorf("%w: rating must be within [0, 5]", services.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewCreatePlaceHandler(mockSvc, authedAs(userID)).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/places", tt.inputBody, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListPlacesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlaceLister(ctrl)

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "defaults",
			target: "/api/places",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), (*string)(nil), models.Page{Number: 1, PerPage: 10}).
					Return(&services.PlaceList{Places: make([]models.PlaceDB, 10), TotalItems: 25, TotalPages: 3, CurrentPage: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "category and page",
			target: "/api/places?category=park&page=3&per_page=10",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), ptr("park"), models.Page{Number: 3, PerPage: 10}).
					Return(&services.PlaceList{Places: make([]models.PlaceDB, 5), TotalItems: 25, TotalPages: 3, CurrentPage: 3}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "non numeric page",
			target:       "/api/places?page=abc",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "page zero",
			target: "/api/places?page=0",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), gomock.Any(), models.Page{Number: 0, PerPage: 10}).
					Return(nil, fmt.Errorf("%w: page must be at least 1", services.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewListPlacesHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodGet, tt.target, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp PlaceListResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, 25, resp.TotalItems)
				assert.Equal(t, 3, resp.TotalPages)
			}
		})
	}
}

func TestNearbyPlacesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNearbyFinder(ctrl)

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:   "default radius",
			target: "/api/places/nearby?latitude=52.5&longitude=13.4",
			mockSetup: func() {
				mockSvc.EXPECT().FindNearby(gomock.Any(), 52.5, 13.4, services.DefaultNearbyRadiusKm, (*string)(nil)).
					Return([]models.NearbyPlace{{PlaceDB: models.PlaceDB{Name: "Tiergarten"}, DistanceKm: 1.2}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "explicit radius and category",
			target: "/api/places/nearby?latitude=52.5&longitude=13.4&radius=2.5&category=cafe",
			mockSetup: func() {
				mockSvc.EXPECT().FindNearby(gomock.Any(), 52.5, 13.4, 2.5, ptr("cafe")).
					Return([]models.NearbyPlace{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing longitude",
			target:       "/api/places/nearby?latitude=52.5",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad radius",
			target:       "/api/places/nearby?latitude=52.5&longitude=13.4&radius=far",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewNearbyPlacesHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodGet, tt.target, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestNearbyPlacesHandler_DistanceInBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockNearbyFinder(ctrl)
	mockSvc.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.NearbyPlace{{PlaceDB: models.PlaceDB{Name: "Tiergarten"}, DistanceKm: 1.2}}, nil)

	rr := httptest.NewRecorder()
	NewNearbyPlacesHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodGet, "/api/places/nearby?latitude=0&longitude=0", nil, nil))

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Tiergarten", resp[0]["name"])
	assert.Equal(t, 1.2, resp[0]["distance_km"])
}

func TestGetPlaceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlaceGetter(ctrl)
	placeID := uuid.New()

	mockSvc.EXPECT().Get(gomock.Any(), placeID).Return(nil, fmt.Errorf("%w: place not found", services.ErrNotFound))

	rr := httptest.NewRecorder()
	NewGetPlaceHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodGet, "/", nil, map[string]string{"place_id": placeID.String()}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not found: place not found", decodeError(t, rr))
}

func TestUpdatePlaceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlaceUpdater(ctrl)
	placeID := uuid.New()

	mockSvc.EXPECT().
		Update(gomock.Any(), placeID, models.PlacePatch{IsVerified: ptr(true)}).
		Return(&models.PlaceDB{PlaceID: placeID, IsVerified: true}, nil)

	rr := httptest.NewRecorder()
	req := newRequest(t, http.MethodPut, "/", `{"is_verified":true}`, map[string]string{"place_id": placeID.String()})
	NewUpdatePlaceHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeletePlaceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlaceDeleter(ctrl)

	rr := httptest.NewRecorder()
	NewDeletePlaceHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"place_id": "x"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	placeID := uuid.New()
	mockSvc.EXPECT().Delete(gomock.Any(), placeID).Return(nil)

	rr = httptest.NewRecorder()
	NewDeletePlaceHandler(mockSvc).ServeHTTP(rr, newRequest(t, http.MethodDelete, "/", nil, map[string]string{"place_id": placeID.String()}))
	assert.Equal(t, http.StatusOK, rr.Code)
}
