package handler

import (
	"log/slog"
	"net/http"

	"arena/internal/delivery/http/response"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category-related handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the category creation request.
func (h *CategoryHandler) Create(c echo.Context) error {
	var input usecase.CreateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created successfully")
}

// List handles the paginated category listing request.
func (h *CategoryHandler) List(c echo.Context) error {
	skip, limit, err := parsePagination(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	categories, err := h.uc.ListCategories(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Get handles the lookup by sequential id.
func (h *CategoryHandler) Get(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	category, err := h.uc.GetCategory(c.Request().Context(), pkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// GetByUUID handles the lookup by public identifier.
func (h *CategoryHandler) GetByUUID(c echo.Context) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	category, err := h.uc.GetCategoryByUUID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "")
}

// Update handles the partial update request.
func (h *CategoryHandler) Update(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	var input usecase.UpdateCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), pkID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated successfully")
}

// Delete handles the removal request.
func (h *CategoryHandler) Delete(c echo.Context) error {
	pkID, err := parsePKID(c, "pk_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_PARAMETER", err.Error())
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), pkID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
