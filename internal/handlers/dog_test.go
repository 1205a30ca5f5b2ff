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

func TestCreateDogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDogCreator(ctrl)
	userID := uuid.New()

	tests := []struct {
		name         string
		inputBody    any
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: `{"name":"Rex","breed":"Labrador","age_years":3,"size":"large","temperament":["calm","friendly"]}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, d *models.DogDB) (*models.DogDB, error) {
						assert.Equal(t, "Rex", d.Name)
						assert.Equal(t, "Labrador", *d.Breed)
						assert.Equal(t, 3, *d.AgeYears)
						assert.ElementsMatch(t, []string{"calm", "friendly"}, d.Temperament)
						d.DogID = uuid.New()
						d.UserID = userID
						return d, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing name",
			inputBody:    `{"breed":"Labrador"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown size",
			inputBody:    `{"name":"Rex","size":"huge"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "negative age",
			inputBody:    `{"name":"Rex","age_years":-1}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			NewCreateDogHandler(mockSvc, authedAs(userID)).ServeHTTP(rr, newRequest(t, http.MethodPost, "/api/dogs", tt.inputBody, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListDogsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDogLister(ctrl)
	userID := uuid.New()

	mockSvc.EXPECT().List(gomock.Any(), userID).Return([]models.DogDB{}, nil)

	rr := httptest.NewRecorder()
	NewListDogsHandler(mockSvc, authedAs(userID)).ServeHTTP(rr, newRequest(t, http.MethodGet, "/api/dogs", nil, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetDogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDogGetter(ctrl)
	userID := uuid.New()
	dogID := uuid.New()

	tests := []struct {
		name         string
		dogID        string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:  "owner",
			dogID: dogID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), dogID, userID).Return(&models.DogDB{DogID: dogID, UserID: userID, Name: "Rex"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "not found",
			dogID: dogID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), dogID, userID).Return(nil, fmt.Errorf("%w: dog not found", services.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "not yours",
			dogID: dogID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), dogID, userID).Return(nil, fmt.Errorf("%w: dog belongs to another user", services.ErrForbidden))
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "bad id",
			dogID:        "123",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/api/dogs/"+tt.dogID, nil, map[string]string{"dog_id": tt.dogID})
			NewGetDogHandler(mockSvc, authedAs(userID)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateDogHandler_PartialPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDogUpdater(ctrl)
	userID := uuid.New()
	dogID := uuid.New()

	mockSvc.EXPECT().
		Update(gomock.Any(), dogID, userID, models.DogPatch{Breed: ptr("Poodle")}).
		Return(&models.DogDB{DogID: dogID, UserID: userID, Name: "Rex", Breed: ptr("Poodle")}, nil)

	rr := httptest.NewRecorder()
	req := newRequest(t, http.MethodPut, "/", `{"breed":"Poodle"}`, map[string]string{"dog_id": dogID.String()})
	NewUpdateDogHandler(mockSvc, authedAs(userID)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var dog models.DogDB
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dog))
	assert.Equal(t, "Rex", dog.Name)
	assert.Equal(t, "Poodle", *dog.Breed)
}

func TestDeleteDogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDogDeleter(ctrl)
	userID := uuid.New()
	dogID := uuid.New()

	mockSvc.EXPECT().Delete(gomock.Any(), dogID, userID).Return(fmt.Errorf("%w: dog belongs to another user", services.ErrForbidden))

	rr := httptest.NewRecorder()
	req := newRequest(t, http.MethodDelete, "/", nil, map[string]string{"dog_id": dogID.String()})
	NewDeleteDogHandler(mockSvc, authedAs(userID)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
