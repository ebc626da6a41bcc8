package handler

import (
	"log/slog"
	"net/http"

	"arena/internal/delivery/http/response"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TrainingCenterHandler holds dependencies for training-center-related
// handlers.
type TrainingCenterHandler struct {
	uc     usecase.TrainingCenterUsecase
	logger *slog.Logger
}

// NewTrainingCenterHandler is the constructor for TrainingCenterHandler,
// injected by Fx.
func NewTrainingCenterHandler(uc usecase.TrainingCenterUsecase, logger *slog.Logger) *TrainingCenterHandler {
	return &TrainingCenterHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the training center registration request.
func (h *TrainingCenterHandler) Create(c echo.Context) error {
	var input usecase.CreateTrainingCenterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid training center input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	trainingCenter, err := h.uc.CreateTrainingCenter(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, trainingCenter, "Training center created successfully")
}

// List handles the paginated training center listing request.
func (h *TrainingCenterHandler) List(c echo.Context) error {
	skip, limit, err := parsePagination(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	trainingCenters, err := h.uc.ListTrainingCenters(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trainingCenters, "")
}

// Get handles the lookup by sequential id.
func (h *TrainingCenterHandler) Get(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	trainingCenter, err := h.uc.GetTrainingCenter(c.Request().Context(), pkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trainingCenter, "")
}

// GetByUUID handles the lookup by public identifier.
func (h *TrainingCenterHandler) GetByUUID(c echo.Context) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	trainingCenter, err := h.uc.GetTrainingCenterByUUID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trainingCenter, "")
}

// Update handles the partial update request.
func (h *TrainingCenterHandler) Update(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	var input usecase.UpdateTrainingCenterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid training center input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	trainingCenter, err := h.uc.UpdateTrainingCenter(c.Request().Context(), pkID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trainingCenter, "Training center updated successfully")
}

// Delete handles the removal request.
func (h *TrainingCenterHandler) Delete(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	if err := h.uc.DeleteTrainingCenter(c.Request().Context(), pkID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListByOwner lists the training centers registered under an owner name.
func (h *TrainingCenterHandler) ListByOwner(c echo.Context) error {
	owner := c.Param("owner")
	if owner == "" {
		return response.BadRequest(c, "INVALID_PARAMETER", "owner must not be empty")
	}

	trainingCenters, err := h.uc.ListTrainingCentersByOwner(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, trainingCenters, "")
}
