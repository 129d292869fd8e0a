package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/person"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// PersonController handles customer, supplier and staff endpoints.
type PersonController struct {
	listUseCase   *person.ListPeopleUseCase
	getUseCase    *person.GetPersonUseCase
	createUseCase *person.CreatePersonUseCase
	updateUseCase *person.UpdatePersonUseCase
	deleteUseCase *person.DeletePersonUseCase
}

// NewPersonController creates a new person controller instance.
func NewPersonController(
	listUseCase *person.ListPeopleUseCase,
	getUseCase *person.GetPersonUseCase,
	createUseCase *person.CreatePersonUseCase,
	updateUseCase *person.UpdatePersonUseCase,
	deleteUseCase *person.DeletePersonUseCase,
) *PersonController {
	return &PersonController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /people requests.
func (c *PersonController) List(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	input := person.ListPeopleInput{
		Session:    session,
		Search:     ctx.Query("search"),
		ActiveOnly: queryBool(ctx, "active"),
	}
	if roleStr := ctx.Query("role"); roleStr != "" {
		role := entity.PersonRole(roleStr)
		input.Role = &role
	}

	people, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PersonListResponse{
		People: dto.ToPersonResponses(people),
	})
}

// Get handles GET /people/:id requests.
func (c *PersonController) Get(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodePersonNotFound))
	if !ok {
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), session, id)
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonResponse(result))
}

// Create handles POST /people requests.
func (c *PersonController) Create(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPersonName))
		return
	}

	result, err := c.createUseCase.Execute(ctx.Request.Context(), person.CreatePersonInput{
		Session:  session,
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Roles:    dto.ToPersonRoles(req.Roles),
		Notes:    req.Notes,
	})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPersonResponse(result))
}

// Update handles PATCH /people/:id requests.
func (c *PersonController) Update(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodePersonNotFound))
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidPersonName))
		return
	}

	result, err := c.updateUseCase.Execute(ctx.Request.Context(), person.UpdatePersonInput{
		Session:  session,
		PersonID: id,
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Roles:    dto.ToPersonRoles(req.Roles),
		Notes:    req.Notes,
		Active:   req.Active,
	})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonResponse(result))
}

// Delete handles DELETE /people/:id requests.
func (c *PersonController) Delete(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodePersonNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), session, id); err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *PersonController) handlePersonError(ctx *gin.Context, err error) {
	var personErr *domainerror.PersonError
	if errors.As(err, &personErr) {
		status := http.StatusBadRequest
		switch personErr.Code {
		case domainerror.ErrCodePersonNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodePersonInternalError:
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: personErr.Message,
			Code:  string(personErr.Code),
		})
		return
	}

	internalError(ctx, err)
}
