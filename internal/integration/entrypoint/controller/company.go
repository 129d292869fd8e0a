package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/company"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// CompanyController handles company endpoints.
type CompanyController struct {
	createUseCase *company.CreateCompanyUseCase
	getUseCase    *company.GetCompanyUseCase
	updateUseCase *company.UpdateCompanyUseCase
}

// NewCompanyController creates a new company controller instance.
func NewCompanyController(
	createUseCase *company.CreateCompanyUseCase,
	getUseCase *company.GetCompanyUseCase,
	updateUseCase *company.UpdateCompanyUseCase,
) *CompanyController {
	return &CompanyController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /companies requests.
func (c *CompanyController) Create(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidCompanyName))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), company.CreateCompanyInput{
		Session:   session,
		Name:      req.Name,
		TradeName: req.TradeName,
		Document:  req.Document,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		c.handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateCompanyResponse{
		Company:    dto.ToCompanyResponse(output.Company),
		Categories: dto.ToCategoryResponses(output.Categories),
	})
}

// Get handles GET /companies/me requests.
func (c *CompanyController) Get(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), session)
	if err != nil {
		c.handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(result))
}

// Update handles PATCH /companies/me requests.
func (c *CompanyController) Update(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidCompanyName))
		return
	}

	result, err := c.updateUseCase.Execute(ctx.Request.Context(), company.UpdateCompanyInput{
		Session:   session,
		Name:      req.Name,
		TradeName: req.TradeName,
		Document:  req.Document,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		c.handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(result))
}

// handleCompanyError handles company errors and returns appropriate HTTP responses.
func (c *CompanyController) handleCompanyError(ctx *gin.Context, err error) {
	var companyErr *domainerror.CompanyError
	if errors.As(err, &companyErr) {
		ctx.JSON(c.getStatusCodeForCompanyError(companyErr.Code), dto.ErrorResponse{
			Error: companyErr.Message,
			Code:  string(companyErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForCompanyError maps company error codes to HTTP status codes.
func (c *CompanyController) getStatusCodeForCompanyError(code domainerror.CompanyErrorCode) int {
	switch code {
	case domainerror.ErrCodeCompanyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUserAlreadyHasCompany:
		return http.StatusConflict
	case domainerror.ErrCodeCompanyRequired,
		domainerror.ErrCodeNotAuthorizedCompany:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCompanyName,
		domainerror.ErrCodeInvalidCompanyDocument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
