package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/product"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// ProductController handles catalog endpoints.
type ProductController struct {
	listUseCase   *product.ListProductsUseCase
	createUseCase *product.CreateProductUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	products, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{
		Session:    session,
		Search:     ctx.Query("search"),
		ActiveOnly: queryBool(ctx, "active"),
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dto.ToProductResponses(products),
	})
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidProductName))
		return
	}

	result, err := c.createUseCase.Execute(ctx.Request.Context(), product.CreateProductInput{
		Session:     session,
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Unit:        req.Unit,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(result))
}

// Update handles PATCH /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeProductNotFound))
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidProductName))
		return
	}

	result, err := c.updateUseCase.Execute(ctx.Request.Context(), product.UpdateProductInput{
		Session:     session,
		ProductID:   id,
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Unit:        req.Unit,
		Active:      req.Active,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(result))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeProductNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), session, id); err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		status := http.StatusBadRequest
		switch productErr.Code {
		case domainerror.ErrCodeProductNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeProductSKUExists:
			status = http.StatusConflict
		case domainerror.ErrCodeProductInternalError:
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	internalError(ctx, err)
}
