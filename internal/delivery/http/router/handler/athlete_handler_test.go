package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arena/internal/delivery/http/middleware"
	"arena/internal/delivery/http/router"
	"arena/internal/delivery/http/router/handler"
	"arena/internal/delivery/http/validator"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAthleteUsecase implements usecase.AthleteUsecase with pluggable
// behavior per test.
type stubAthleteUsecase struct {
	createFn     func(ctx context.Context, input *usecase.CreateAthleteInput) (*entity.Athlete, error)
	getFn        func(ctx context.Context, pkID int64) (*entity.Athlete, error)
	getByUUIDFn  func(ctx context.Context, id uuid.UUID) (*entity.Athlete, error)
	listFn       func(ctx context.Context, skip, limit int) ([]*entity.Athlete, error)
	updateFn     func(ctx context.Context, pkID int64, input *usecase.UpdateAthleteInput) (*entity.Athlete, error)
	deleteFn     func(ctx context.Context, pkID int64) error
	byTCFn       func(ctx context.Context, trainingCenterID int64) ([]*entity.Athlete, error)
	byCategoryFn func(ctx context.Context, categoryID int64) ([]*entity.Athlete, error)
	byAgeFn      func(ctx context.Context, minAge, maxAge int) ([]*entity.Athlete, error)
}

func (s *stubAthleteUsecase) CreateAthlete(ctx context.Context, input *usecase.CreateAthleteInput) (*entity.Athlete, error) {
	return s.createFn(ctx, input)
}

func (s *stubAthleteUsecase) GetAthlete(ctx context.Context, pkID int64) (*entity.Athlete, error) {
	return s.getFn(ctx, pkID)
}

func (s *stubAthleteUsecase) GetAthleteByUUID(ctx context.Context, id uuid.UUID) (*entity.Athlete, error) {
	return s.getByUUIDFn(ctx, id)
}

func (s *stubAthleteUsecase) ListAthletes(ctx context.Context, skip, limit int) ([]*entity.Athlete, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubAthleteUsecase) UpdateAthlete(ctx context.Context, pkID int64, input *usecase.UpdateAthleteInput) (*entity.Athlete, error) {
	return s.updateFn(ctx, pkID, input)
}

func (s *stubAthleteUsecase) DeleteAthlete(ctx context.Context, pkID int64) error {
	return s.deleteFn(ctx, pkID)
}

func (s *stubAthleteUsecase) ListAthletesByTrainingCenter(ctx context.Context, trainingCenterID int64) ([]*entity.Athlete, error) {
	return s.byTCFn(ctx, trainingCenterID)
}

func (s *stubAthleteUsecase) ListAthletesByCategory(ctx context.Context, categoryID int64) ([]*entity.Athlete, error) {
	return s.byCategoryFn(ctx, categoryID)
}

func (s *stubAthleteUsecase) ListAthletesByAgeRange(ctx context.Context, minAge, maxAge int) ([]*entity.Athlete, error) {
	return s.byAgeFn(ctx, minAge, maxAge)
}

// unusedCategoryUsecase and unusedTrainingCenterUsecase satisfy the router
// wiring for tests that only exercise athlete routes.
type unusedCategoryUsecase struct{ usecase.CategoryUsecase }

type unusedTrainingCenterUsecase struct{ usecase.TrainingCenterUsecase }

func newTestServer(t *testing.T, uc usecase.AthleteUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AthleteHandler:        handler.NewAthleteHandler(uc, logger),
		CategoryHandler:       handler.NewCategoryHandler(&unusedCategoryUsecase{}, logger),
		TrainingCenterHandler: handler.NewTrainingCenterHandler(&unusedTrainingCenterUsecase{}, logger),
		RequestIDMiddleware:   middleware.NewRequestIDMiddleware(logger),
	})
	r.RegisterRoutes(e)

	return e
}

func TestAthleteHandler_Create_Created(t *testing.T) {
	uc := &stubAthleteUsecase{
		createFn: func(_ context.Context, input *usecase.CreateAthleteInput) (*entity.Athlete, error) {
			return &entity.Athlete{PKID: 1, ID: uuid.New(), Name: input.Name, CPF: input.CPF}, nil
		},
	}
	e := newTestServer(t, uc)

	body := `{"name":"Ana Souza","cpf":"12345678901"}`
	req := httptest.NewRequest(http.MethodPost, "/athletes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"cpf":"12345678901"`)
}

func TestAthleteHandler_Create_MissingName_UnprocessableEntity(t *testing.T) {
	uc := &stubAthleteUsecase{
		createFn: func(_ context.Context, _ *usecase.CreateAthleteInput) (*entity.Athlete, error) {
			t.Fatal("usecase must not be reached on validation failure")

			return nil, nil
		},
	}
	e := newTestServer(t, uc)

	body := `{"cpf":"12345678901"}`
	req := httptest.NewRequest(http.MethodPost, "/athletes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAthleteHandler_Create_MalformedBody_BadRequest(t *testing.T) {
	uc := &stubAthleteUsecase{}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPost, "/athletes", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAthleteHandler_Create_DuplicateCPF_Conflict(t *testing.T) {
	uc := &stubAthleteUsecase{
		createFn: func(_ context.Context, _ *usecase.CreateAthleteInput) (*entity.Athlete, error) {
			return nil, domainerrors.ErrAlreadyExists.WithDetails(`athlete with cpf "12345678901" already exists`)
		},
	}
	e := newTestServer(t, uc)

	body := `{"name":"Ana Souza","cpf":"12345678901"}`
	req := httptest.NewRequest(http.MethodPost, "/athletes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ALREADY_EXISTS")
}

func TestAthleteHandler_Get_OK(t *testing.T) {
	uc := &stubAthleteUsecase{
		getFn: func(_ context.Context, pkID int64) (*entity.Athlete, error) {
			return &entity.Athlete{PKID: pkID, Name: "Ana Souza", CPF: "12345678901"}, nil
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes/3", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pk_id":3`)
}

func TestAthleteHandler_Get_NotFound(t *testing.T) {
	uc := &stubAthleteUsecase{
		getFn: func(_ context.Context, pkID int64) (*entity.Athlete, error) {
			return nil, domainerrors.ErrNotFound.WithDetails("athlete with id 99 not found")
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes/99", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "athlete with id 99 not found")
}

func TestAthleteHandler_Get_NonNumericID_BadRequest(t *testing.T) {
	uc := &stubAthleteUsecase{}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes/abc", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PARAMETER")
}

func TestAthleteHandler_GetByUUID_InvalidUUID_BadRequest(t *testing.T) {
	uc := &stubAthleteUsecase{}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes/uuid/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PARAMETER")
}

func TestAthleteHandler_List_DefaultPagination(t *testing.T) {
	var gotSkip, gotLimit int
	uc := &stubAthleteUsecase{
		listFn: func(_ context.Context, skip, limit int) ([]*entity.Athlete, error) {
			gotSkip, gotLimit = skip, limit

			return []*entity.Athlete{}, nil
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, gotSkip)
	assert.Equal(t, 100, gotLimit)
}

func TestAthleteHandler_List_LimitCapped(t *testing.T) {
	var gotLimit int
	uc := &stubAthleteUsecase{
		listFn: func(_ context.Context, _, limit int) ([]*entity.Athlete, error) {
			gotLimit = limit

			return []*entity.Athlete{}, nil
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes?limit=500", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, gotLimit)
}

func TestAthleteHandler_List_NegativeSkip_BadRequest(t *testing.T) {
	uc := &stubAthleteUsecase{}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes?skip=-1", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PARAMETER")
}

func TestAthleteHandler_Update_OK(t *testing.T) {
	uc := &stubAthleteUsecase{
		updateFn: func(_ context.Context, pkID int64, input *usecase.UpdateAthleteInput) (*entity.Athlete, error) {
			require.NotNil(t, input.Name)

			return &entity.Athlete{PKID: pkID, Name: *input.Name, CPF: "12345678901"}, nil
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodPut, "/athletes/3", strings.NewReader(`{"name":"Ana Lima"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana Lima")
}

func TestAthleteHandler_Delete_NoContent(t *testing.T) {
	uc := &stubAthleteUsecase{
		deleteFn: func(_ context.Context, pkID int64) error {
			return nil
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodDelete, "/athletes/3", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAthleteHandler_ListByAgeRange_MinAboveMax_BadRequest(t *testing.T) {
	uc := &stubAthleteUsecase{
		byAgeFn: func(_ context.Context, _, _ int) ([]*entity.Athlete, error) {
			t.Fatal("usecase must not be reached when min exceeds max")

			return nil, nil
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes/age-range/30/18", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "min_age must not exceed max_age")
}

func TestAthleteHandler_ListByAgeRange_OK(t *testing.T) {
	age := 20
	uc := &stubAthleteUsecase{
		byAgeFn: func(_ context.Context, minAge, maxAge int) ([]*entity.Athlete, error) {
			assert.Equal(t, 18, minAge)
			assert.Equal(t, 25, maxAge)

			return []*entity.Athlete{{PKID: 1, Name: "Ana Souza", Age: &age}}, nil
		},
	}
	e := newTestServer(t, uc)

	req := httptest.NewRequest(http.MethodGet, "/athletes/age-range/18/25", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana Souza")
}

func TestHealthCheck_OK(t *testing.T) {
	e := newTestServer(t, &stubAthleteUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_UnknownRoute_NotFoundEnvelope(t *testing.T) {
	e := newTestServer(t, &stubAthleteUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
