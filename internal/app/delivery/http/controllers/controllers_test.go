package controllers

import (
	"context"
	"errors"
	"medirisk-service/internal/app/config"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/dto/requests"
	"medirisk-service/internal/pkg/dto/responses"
	"medirisk-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) FindAll(ctx context.Context) (map[string]responses.Patient, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(map[string]responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) Sort(ctx context.Context, request *requests.SortPatients) ([]responses.Patient, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]responses.Patient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CreatePatient)
	return result, args.Error(1)
}

func (m *MockPatientUsecase) Delete(ctx context.Context, patientID string) (*responses.DeletePatient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*responses.DeletePatient)
	return result, args.Error(1)
}

type MockPredictionUsecase struct {
	mock.Mock
}

func (m *MockPredictionUsecase) PredictPremium(ctx context.Context, request *requests.PredictPremium) (*responses.PredictPremium, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.PredictPremium)
	return result, args.Error(1)
}

var testInternalConfig = &config.InternalConfig{
	App: config.App{RequestTimeoutInSeconds: 5},
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")

	if len(params) > 0 {
		routeCtx := chi.NewRouteContext()
		for key, value := range params {
			routeCtx.URLParams.Add(key, value)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPatientController_HomeAndAbout(t *testing.T) {
	ctrl := NewPatientController(zap.NewNop(), new(MockPatientUsecase), testInternalConfig)

	rec := httptest.NewRecorder()
	ctrl.Home(rec, newRequest(http.MethodGet, "/", "", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constvars.HomeMessage, decodeBody(t, rec)["message"])

	rec = httptest.NewRecorder()
	ctrl.About(rec, newRequest(http.MethodGet, "/about", "", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constvars.AboutMessage, decodeBody(t, rec)["message"])
}

func TestPatientController_View(t *testing.T) {
	usecase := new(MockPatientUsecase)
	usecase.On("FindAll", mock.Anything).Return(map[string]responses.Patient{
		"P001": {ID: "P001", Name: "Ravi", BMI: 25, Verdict: "overweight"},
	}, nil).Once()
	ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

	rec := httptest.NewRecorder()
	ctrl.View(rec, newRequest(http.MethodGet, "/view", "", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Contains(t, body, "P001")
	assert.Equal(t, "overweight", body["P001"].(map[string]interface{})["verdict"])
}

func TestPatientController_View_MissingRequestID(t *testing.T) {
	ctrl := NewPatientController(zap.NewNop(), new(MockPatientUsecase), testInternalConfig)

	rec := httptest.NewRecorder()
	ctrl.View(rec, httptest.NewRequest(http.MethodGet, "/view", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPatientController_FindByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("FindByID", mock.Anything, "P001").Return(&responses.Patient{ID: "P001", Name: "Ravi"}, nil).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.FindByID(rec, newRequest(http.MethodGet, "/patient/P001", "", map[string]string{constvars.URLParamPatientID: "P001"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ravi", decodeBody(t, rec)["name"])
	})

	t.Run("Not Found", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("FindByID", mock.Anything, "P404").Return(nil, exceptions.ErrPatientNotFound(nil, "P404")).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.FindByID(rec, newRequest(http.MethodGet, "/patient/P404", "", map[string]string{constvars.URLParamPatientID: "P404"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Patient not found", body["message"])
		assert.Equal(t, false, body["success"])
	})
}

func TestPatientController_Sort(t *testing.T) {
	t.Run("Passes Query Parameters", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Sort", mock.Anything, &requests.SortPatients{SortBy: "bmi", Order: "desc"}).
			Return([]responses.Patient{{ID: "P002", Name: "B"}, {ID: "P001", Name: "A"}}, nil).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Sort(rec, newRequest(http.MethodGet, "/sort?sort_by=bmi&order=desc", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "B", body[0]["name"])
		assert.NotContains(t, body[0], "id")
	})

	t.Run("Missing Order Defaults To Ascending", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Sort", mock.Anything, &requests.SortPatients{SortBy: "weight", Order: "asc"}).
			Return([]responses.Patient{}, nil).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Sort(rec, newRequest(http.MethodGet, "/sort?sort_by=weight", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Explicit Empty Order Is Passed Through", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Sort", mock.Anything, &requests.SortPatients{SortBy: "weight", Order: ""}).
			Return(nil, exceptions.ErrInvalidSortOrder(nil)).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Sort(rec, newRequest(http.MethodGet, "/sort?sort_by=weight&order=", "", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Invalid Field", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Sort", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidSortField(nil)).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Sort(rec, newRequest(http.MethodGet, "/sort?sort_by=age", "", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPatientController_Create(t *testing.T) {
	validBody := `{"name": "Meera", "city": "Delhi", "gender": "female", "age": 33, "height": 1.6, "weight": 60}`

	t.Run("Created", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Create", mock.Anything, mock.MatchedBy(func(request *requests.CreatePatient) bool {
			return request.Name == "Meera" && request.Age == 33
		})).Return(&responses.CreatePatient{Message: constvars.CreatePatientSuccessMessage, ID: "P001"}, nil).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newRequest(http.MethodPost, "/create", validBody, nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "P001", body["id"])
		assert.Equal(t, constvars.CreatePatientSuccessMessage, body["message"])
	})

	t.Run("Validation Failure", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newRequest(http.MethodPost, "/create", `{"name": "Meera", "city": "Delhi", "gender": "robot", "age": 0, "height": 1.6, "weight": 60}`, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody(t, rec)
		fieldErrors, ok := body["errors"].([]interface{})
		require.True(t, ok)
		fields := make([]string, 0, len(fieldErrors))
		for _, fieldErr := range fieldErrors {
			fields = append(fields, fieldErr.(map[string]interface{})["field"].(string))
		}
		assert.ElementsMatch(t, []string{"gender", "age"}, fields)
		usecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Wrong Type", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newRequest(http.MethodPost, "/create", `{"name": "Meera", "city": "Delhi", "gender": "female", "age": "old", "height": 1.6, "weight": 60}`, nil))

		assert.Contains(t, []int{http.StatusBadRequest, http.StatusUnprocessableEntity}, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["success"])
		usecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		ctrl := NewPatientController(zap.NewNop(), new(MockPatientUsecase), testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newRequest(http.MethodPost, "/create", `{"name": `, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Store Failure", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Create", mock.Anything, mock.Anything).Return(nil, exceptions.ErrStoreWriteDocument(errors.New("disk full"), "file")).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, newRequest(http.MethodPost, "/create", validBody, nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestPatientController_Delete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Delete", mock.Anything, "P001").Return(&responses.DeletePatient{
			Message:     "Patient P001 deleted successfully",
			DeletedData: responses.Patient{ID: "P001", Name: "Ravi"},
		}, nil).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Delete(rec, newRequest(http.MethodDelete, "/delete/P001", "", map[string]string{constvars.URLParamPatientID: "P001"}))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Patient P001 deleted successfully", body["message"])
		assert.Equal(t, "Ravi", body["deleted_data"].(map[string]interface{})["name"])
	})

	t.Run("Deadline Exceeded", func(t *testing.T) {
		usecase := new(MockPatientUsecase)
		usecase.On("Delete", mock.Anything, "P001").Return(nil, exceptions.ErrStoreReadDocument(context.DeadlineExceeded, "minio")).Once()
		ctrl := NewPatientController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Delete(rec, newRequest(http.MethodDelete, "/delete/P001", "", map[string]string{constvars.URLParamPatientID: "P001"}))

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}

func TestPredictionController(t *testing.T) {
	validBody := `{"age": 30, "weight": 90, "height": 1.7, "city": "Mumbai", "income_lpa": 4, "occupation": "private_job", "smoker": false}`

	t.Run("Home And Health", func(t *testing.T) {
		ctrl := NewPredictionController(zap.NewNop(), new(MockPredictionUsecase), testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Home(rec, newRequest(http.MethodGet, "/", "", nil))
		assert.Equal(t, constvars.PredictHomeMessage, decodeBody(t, rec)["message"])

		rec = httptest.NewRecorder()
		ctrl.Health(rec, newRequest(http.MethodGet, "/health", "", nil))
		assert.Equal(t, constvars.PredictHealthMessage, decodeBody(t, rec)["message"])
	})

	t.Run("Predicts", func(t *testing.T) {
		usecase := new(MockPredictionUsecase)
		usecase.On("PredictPremium", mock.Anything, mock.MatchedBy(func(request *requests.PredictPremium) bool {
			return request.Smoker != nil && !*request.Smoker && request.IncomeLPA == 4
		})).Return(&responses.PredictPremium{PredictedCategory: "Medium"}, nil).Once()
		ctrl := NewPredictionController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Predict(rec, newRequest(http.MethodPost, "/predict", validBody, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Medium", decodeBody(t, rec)["predicted_category"])
	})

	t.Run("Missing Smoker", func(t *testing.T) {
		usecase := new(MockPredictionUsecase)
		ctrl := NewPredictionController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Predict(rec, newRequest(http.MethodPost, "/predict", `{"age": 30, "weight": 90, "height": 1.7, "city": "Mumbai", "income_lpa": 4, "occupation": "private_job"}`, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		usecase.AssertNotCalled(t, "PredictPremium", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Occupation", func(t *testing.T) {
		ctrl := NewPredictionController(zap.NewNop(), new(MockPredictionUsecase), testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Predict(rec, newRequest(http.MethodPost, "/predict", strings.Replace(validBody, "private_job", "astronaut", 1), nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Classifier Unavailable", func(t *testing.T) {
		usecase := new(MockPredictionUsecase)
		usecase.On("PredictPremium", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrClassifierRemoteStatus(nil, http.StatusServiceUnavailable)).Once()
		ctrl := NewPredictionController(zap.NewNop(), usecase, testInternalConfig)

		rec := httptest.NewRecorder()
		ctrl.Predict(rec, newRequest(http.MethodPost, "/predict", validBody, nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
