package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"arena/internal/delivery/http/response"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AthleteHandler holds dependencies for athlete-related handlers.
type AthleteHandler struct {
	uc     usecase.AthleteUsecase
	logger *slog.Logger
}

// NewAthleteHandler is the constructor for AthleteHandler, injected by Fx.
func NewAthleteHandler(uc usecase.AthleteUsecase, logger *slog.Logger) *AthleteHandler {
	return &AthleteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the athlete registration request.
func (h *AthleteHandler) Create(c echo.Context) error {
	var input usecase.CreateAthleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid athlete input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	athlete, err := h.uc.CreateAthlete(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, athlete, "Athlete created successfully")
}

// List handles the paginated athlete listing request.
func (h *AthleteHandler) List(c echo.Context) error {
	skip, limit, err := parsePagination(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	athletes, err := h.uc.ListAthletes(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athletes, "")
}

// Get handles the lookup by sequential id.
func (h *AthleteHandler) Get(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	athlete, err := h.uc.GetAthlete(c.Request().Context(), pkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athlete, "")
}

// GetByUUID handles the lookup by public identifier.
func (h *AthleteHandler) GetByUUID(c echo.Context) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	athlete, err := h.uc.GetAthleteByUUID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athlete, "")
}

// Update handles the partial update request.
func (h *AthleteHandler) Update(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	var input usecase.UpdateAthleteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid athlete input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	athlete, err := h.uc.UpdateAthlete(c.Request().Context(), pkID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athlete, "Athlete updated successfully")
}

// Delete handles the removal request.
func (h *AthleteHandler) Delete(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	if err := h.uc.DeleteAthlete(c.Request().Context(), pkID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListByTrainingCenter lists the athletes assigned to a training center.
func (h *AthleteHandler) ListByTrainingCenter(c echo.Context) error {
	trainingCenterID, err := parsePKID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	athletes, err := h.uc.ListAthletesByTrainingCenter(c.Request().Context(), trainingCenterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athletes, "")
}

// ListByCategory lists the athletes competing in a category.
func (h *AthleteHandler) ListByCategory(c echo.Context) error {
	categoryID, err := parsePKID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	athletes, err := h.uc.ListAthletesByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athletes, "")
}

// ListByAgeRange lists the athletes whose age falls within the inclusive
// bounds given in the path.
func (h *AthleteHandler) ListByAgeRange(c echo.Context) error {
	minAge, err := strconv.Atoi(c.Param("min_age"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", "min_age must be an integer")
	}

	maxAge, err := strconv.Atoi(c.Param("max_age"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", "max_age must be an integer")
	}

	if minAge > maxAge {
		return response.BadRequest(c, "INVALID_PARAMETER", "min_age must not exceed max_age")
	}

	athletes, err := h.uc.ListAthletesByAgeRange(c.Request().Context(), minAge, maxAge)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, athletes, "")
}
