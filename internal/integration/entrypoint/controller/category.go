package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/category"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase    *category.ListCategoriesUseCase
	createUseCase  *category.CreateCategoryUseCase
	updateUseCase  *category.UpdateCategoryUseCase
	deleteUseCase  *category.DeleteCategoryUseCase
	suggestUseCase *category.SuggestCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	suggestUseCase *category.SuggestCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	input := category.ListCategoriesInput{
		Session: session,
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		categoryType := entity.CategoryType(typeStr)
		if categoryType != entity.CategoryTypeRevenue && categoryType != entity.CategoryTypeExpense {
			badRequest(ctx, "Invalid category type. Must be 'revenue' or 'expense'", string(domainerror.ErrCodeInvalidCategoryType))
			return
		}
		input.Type = &categoryType
	}

	categories, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: dto.ToCategoryResponses(categories),
	})
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	result, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Session:           session,
		Name:              req.Name,
		Color:             req.Color,
		Type:              entity.CategoryType(req.Type),
		DREClassification: req.DREClassification,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(result))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	categoryID, ok := pathID(ctx, string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	result, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		Session:           session,
		CategoryID:        categoryID,
		Name:              req.Name,
		Color:             req.Color,
		DREClassification: req.DREClassification,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(result))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	categoryID, ok := pathID(ctx, string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		Session:    session,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Suggest handles POST /categories/suggest requests.
func (c *CategoryController) Suggest(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	suggestion, err := c.suggestUseCase.Execute(ctx.Request.Context(), category.SuggestCategoryInput{
		Session:     session,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        entity.EntryType(req.Type),
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorySuggestionResponse(suggestion))
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeInvalidDREClassification,
		domainerror.ErrCodeClassificationOnRevenue,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeMissingCategoryFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeSuggestionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
