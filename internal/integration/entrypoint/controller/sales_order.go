package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/salesorder"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// SalesOrderController handles sales order endpoints.
type SalesOrderController struct {
	listUseCase   *salesorder.ListSalesOrdersUseCase
	getUseCase    *salesorder.GetSalesOrderUseCase
	createUseCase *salesorder.CreateSalesOrderUseCase
	statusUseCase *salesorder.UpdateStatusUseCase
	deleteUseCase *salesorder.DeleteSalesOrderUseCase
}

// NewSalesOrderController creates a new sales order controller instance.
func NewSalesOrderController(
	listUseCase *salesorder.ListSalesOrdersUseCase,
	getUseCase *salesorder.GetSalesOrderUseCase,
	createUseCase *salesorder.CreateSalesOrderUseCase,
	statusUseCase *salesorder.UpdateStatusUseCase,
	deleteUseCase *salesorder.DeleteSalesOrderUseCase,
) *SalesOrderController {
	return &SalesOrderController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		statusUseCase: statusUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /sales-orders requests.
func (c *SalesOrderController) List(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	input := salesorder.ListSalesOrdersInput{
		Session: session,
		Page:    queryInt(ctx, "page"),
		Limit:   queryInt(ctx, "limit"),
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.SalesOrderStatus(statusStr)
		input.Status = &status
	}

	var err error
	if input.CustomerID, err = dto.ParseOptionalUUID(ctx.Query("customer_id")); err != nil {
		badRequest(ctx, "Invalid customer_id format", string(domainerror.ErrCodeOrderCustomerNotFound))
		return
	}
	if input.StartDate, err = dto.ParseOptionalDate(optionalQuery(ctx, "start_date")); err != nil {
		badRequest(ctx, "Invalid start_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidOrderDate))
		return
	}
	if input.EndDate, err = dto.ParseOptionalDate(optionalQuery(ctx, "end_date")); err != nil {
		badRequest(ctx, "Invalid end_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidOrderDate))
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSalesOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesOrderListResponse(result))
}

// Get handles GET /sales-orders/:id requests.
func (c *SalesOrderController) Get(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeSalesOrderNotFound))
	if !ok {
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), session, id)
	if err != nil {
		c.handleSalesOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesOrderResponse(result))
}

// Create handles POST /sales-orders requests.
func (c *SalesOrderController) Create(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	var req dto.CreateSalesOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeEmptySalesOrder))
		return
	}

	orderDate, err := dto.ParseDate(req.OrderDate)
	if err != nil {
		badRequest(ctx, "Invalid order_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidOrderDate))
		return
	}
	customerID, err := dto.ParseOptionalUUID(req.CustomerID)
	if err != nil {
		badRequest(ctx, "Invalid customer_id format", string(domainerror.ErrCodeOrderCustomerNotFound))
		return
	}

	items := make([]salesorder.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := dto.ParseOptionalUUID(item.ProductID)
		if err != nil {
			badRequest(ctx, "Invalid product_id format", string(domainerror.ErrCodeOrderProductNotFound))
			return
		}
		items = append(items, salesorder.OrderItemInput{
			ProductID:   productID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	result, err := c.createUseCase.Execute(ctx.Request.Context(), salesorder.CreateSalesOrderInput{
		Session:    session,
		CustomerID: customerID,
		OrderDate:  orderDate,
		Discount:   req.Discount,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		c.handleSalesOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSalesOrderResponse(result))
}

// UpdateStatus handles POST /sales-orders/:id/status requests.
func (c *SalesOrderController) UpdateStatus(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeSalesOrderNotFound))
	if !ok {
		return
	}

	var req dto.UpdateSalesOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidOrderStatus))
		return
	}

	result, err := c.statusUseCase.Execute(ctx.Request.Context(), salesorder.UpdateStatusInput{
		Session: session,
		OrderID: id,
		Status:  entity.SalesOrderStatus(req.Status),
	})
	if err != nil {
		c.handleSalesOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesOrderResponse(result))
}

// Delete handles DELETE /sales-orders/:id requests. Only drafts can be deleted.
func (c *SalesOrderController) Delete(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	id, ok := pathID(ctx, string(domainerror.ErrCodeSalesOrderNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), session, id); err != nil {
		c.handleSalesOrderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleSalesOrderError handles sales order errors and returns appropriate HTTP responses.
func (c *SalesOrderController) handleSalesOrderError(ctx *gin.Context, err error) {
	var orderErr *domainerror.SalesOrderError
	if errors.As(err, &orderErr) {
		ctx.JSON(c.getStatusCodeForSalesOrderError(orderErr.Code), dto.ErrorResponse{
			Error: orderErr.Message,
			Code:  string(orderErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForSalesOrderError maps sales order error codes to HTTP status codes.
func (c *SalesOrderController) getStatusCodeForSalesOrderError(code domainerror.SalesOrderErrorCode) int {
	switch code {
	case domainerror.ErrCodeSalesOrderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidStatusTransition,
		domainerror.ErrCodeSalesOrderNotDraft:
		return http.StatusConflict
	case domainerror.ErrCodeSalesOrderInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
