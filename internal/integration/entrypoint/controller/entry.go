package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/entry"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// EntryController handles accounts payable and receivable endpoints.
type EntryController struct {
	listUseCase   *entry.ListEntriesUseCase
	getUseCase    *entry.GetEntryUseCase
	createUseCase *entry.CreateEntryUseCase
	updateUseCase *entry.UpdateEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
	settleUseCase *entry.SettleEntryUseCase
	cancelUseCase *entry.CancelEntryUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	listUseCase *entry.ListEntriesUseCase,
	getUseCase *entry.GetEntryUseCase,
	createUseCase *entry.CreateEntryUseCase,
	updateUseCase *entry.UpdateEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
	settleUseCase *entry.SettleEntryUseCase,
	cancelUseCase *entry.CancelEntryUseCase,
) *EntryController {
	return &EntryController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		settleUseCase: settleUseCase,
		cancelUseCase: cancelUseCase,
	}
}

// List handles GET /entries requests.
func (c *EntryController) List(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	input := entry.ListEntriesInput{
		Session: session,
		Search:  ctx.Query("search"),
		Page:    queryInt(ctx, "page"),
		Limit:   queryInt(ctx, "limit"),
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		entryType := entity.EntryType(typeStr)
		input.Type = &entryType
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.EntryStatus(statusStr)
		input.Status = &status
	}

	var err error
	if input.StartDate, err = dto.ParseOptionalDate(optionalQuery(ctx, "start_date")); err != nil {
		badRequest(ctx, "Invalid start_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}
	if input.EndDate, err = dto.ParseOptionalDate(optionalQuery(ctx, "end_date")); err != nil {
		badRequest(ctx, "Invalid end_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}
	if input.CategoryID, err = dto.ParseOptionalUUID(ctx.Query("category_id")); err != nil {
		badRequest(ctx, "Invalid category_id format", string(domainerror.ErrCodeEntryCategoryNotFound))
		return
	}
	if input.PersonID, err = dto.ParseOptionalUUID(ctx.Query("person_id")); err != nil {
		badRequest(ctx, "Invalid person_id format", string(domainerror.ErrCodeEntryPersonNotFound))
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(result))
}

// Get handles GET /entries/:id requests.
func (c *EntryController) Get(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeEntryNotFound))
	if !ok {
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), session, id)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(result))
}

// Create handles POST /entries requests. Installment requests answer with every created entry.
func (c *EntryController) Create(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingEntryFields))
		return
	}

	transactionDate, err := dto.ParseDate(req.TransactionDate)
	if err != nil {
		badRequest(ctx, "Invalid transaction_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		badRequest(ctx, "Invalid due_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}
	categoryID, err := dto.ParseOptionalUUID(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid category_id format", string(domainerror.ErrCodeEntryCategoryNotFound))
		return
	}
	personID, err := dto.ParseOptionalUUID(req.PersonID)
	if err != nil {
		badRequest(ctx, "Invalid person_id format", string(domainerror.ErrCodeEntryPersonNotFound))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), entry.CreateEntryInput{
		Session:         session,
		Type:            entity.EntryType(req.Type),
		Description:     req.Description,
		Amount:          req.Amount,
		TransactionDate: transactionDate,
		DueDate:         dueDate,
		CategoryID:      categoryID,
		PersonID:        personID,
		Notes:           req.Notes,
		Installments:    req.Installments,
		InstallmentMode: entry.InstallmentMode(req.InstallmentMode),
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateEntryResponse{
		Entries: dto.ToEntryResponses(output.Entries),
	})
}

// Update handles PATCH /entries/:id requests.
func (c *EntryController) Update(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeEntryNotFound))
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingEntryFields))
		return
	}

	input := entry.UpdateEntryInput{
		Session:     session,
		EntryID:     id,
		Description: req.Description,
		Amount:      req.Amount,
		Notes:       req.Notes,
	}

	var err error
	if input.TransactionDate, err = dto.ParseOptionalDate(req.TransactionDate); err != nil {
		badRequest(ctx, "Invalid transaction_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}
	if input.DueDate, err = dto.ParseOptionalDate(req.DueDate); err != nil {
		badRequest(ctx, "Invalid due_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}
	if req.CategoryID != nil {
		if input.CategoryID, err = dto.ParseOptionalUUID(*req.CategoryID); err != nil {
			badRequest(ctx, "Invalid category_id format", string(domainerror.ErrCodeEntryCategoryNotFound))
			return
		}
		input.ClearCategory = input.CategoryID == nil
	}
	if req.PersonID != nil {
		if input.PersonID, err = dto.ParseOptionalUUID(*req.PersonID); err != nil {
			badRequest(ctx, "Invalid person_id format", string(domainerror.ErrCodeEntryPersonNotFound))
			return
		}
		input.ClearPerson = input.PersonID == nil
	}

	result, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(result))
}

// Delete handles DELETE /entries/:id requests.
func (c *EntryController) Delete(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeEntryNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), session, id); err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Settle handles POST /entries/:id/settle requests.
func (c *EntryController) Settle(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeEntryNotFound))
	if !ok {
		return
	}

	var req dto.SettleEntryRequest
	// The body is optional. Without paid_at the entry is settled today.
	_ = ctx.ShouldBindJSON(&req)

	paidAt, err := dto.ParseDate(req.PaidAt)
	if err != nil {
		badRequest(ctx, "Invalid paid_at format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidEntryDate))
		return
	}

	result, err := c.settleUseCase.Execute(ctx.Request.Context(), entry.SettleEntryInput{
		Session: session,
		EntryID: id,
		PaidAt:  paidAt,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(result))
}

// Cancel handles POST /entries/:id/cancel requests.
func (c *EntryController) Cancel(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeEntryNotFound))
	if !ok {
		return
	}

	result, err := c.cancelUseCase.Execute(ctx.Request.Context(), session, id)
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(result))
}

// handleEntryError handles entry errors and returns appropriate HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(c.getStatusCodeForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEntryAlreadySettled,
		domainerror.ErrCodeEntryCancelled:
		return http.StatusConflict
	case domainerror.ErrCodeEntryInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func optionalQuery(ctx *gin.Context, name string) *string {
	v, ok := ctx.GetQuery(name)
	if !ok || v == "" {
		return nil
	}
	return &v
}
