package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/integration/entrypoint/dto"
)

// RequestSeqHeader carries the client sequence number of a dashboard request.
// Requests without it are never considered stale.
const RequestSeqHeader = "X-Request-Seq"

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDREUseCase        *dashboard.GetDREUseCase
	getEstimateUseCase   *dashboard.GetEstimateUseCase
	getIndicatorsUseCase *dashboard.GetIndicatorsUseCase
	getCashFlowUseCase   *dashboard.GetCashFlowUseCase
	sequencer            *dashboard.RequestSequencer
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDREUseCase *dashboard.GetDREUseCase,
	getEstimateUseCase *dashboard.GetEstimateUseCase,
	getIndicatorsUseCase *dashboard.GetIndicatorsUseCase,
	getCashFlowUseCase *dashboard.GetCashFlowUseCase,
	sequencer *dashboard.RequestSequencer,
) *DashboardController {
	return &DashboardController{
		getDREUseCase:        getDREUseCase,
		getEstimateUseCase:   getEstimateUseCase,
		getIndicatorsUseCase: getIndicatorsUseCase,
		getCashFlowUseCase:   getCashFlowUseCase,
		sequencer:            sequencer,
	}
}

// GetDRE handles GET /dashboard/dre requests.
func (c *DashboardController) GetDRE(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	start, end, ok := parseRange(ctx)
	if !ok {
		return
	}

	reqCtx, finish, ok := c.sequence(ctx, session, "dre")
	if !ok {
		return
	}

	output, err := c.getDREUseCase.Execute(reqCtx, dashboard.GetDREInput{
		Session:   session,
		StartDate: start,
		EndDate:   end,
		Basis:     dashboard.Basis(ctx.Query("basis")),
	})
	if !finish(err) {
		return
	}
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDREResponse(output))
}

// GetEstimate handles GET /dashboard/estimate requests.
func (c *DashboardController) GetEstimate(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	start, end, ok := parseRange(ctx)
	if !ok {
		return
	}

	reqCtx, finish, ok := c.sequence(ctx, session, "estimate")
	if !ok {
		return
	}

	output, err := c.getEstimateUseCase.Execute(reqCtx, dashboard.GetEstimateInput{
		Session:   session,
		StartDate: start,
		EndDate:   end,
		Basis:     dashboard.Basis(ctx.Query("basis")),
	})
	if !finish(err) {
		return
	}
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstimateResponse(output))
}

// GetIndicators handles GET /dashboard/indicators requests.
func (c *DashboardController) GetIndicators(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	start, end, ok := parseRange(ctx)
	if !ok {
		return
	}

	reqCtx, finish, ok := c.sequence(ctx, session, "indicators")
	if !ok {
		return
	}

	output, err := c.getIndicatorsUseCase.Execute(reqCtx, dashboard.GetIndicatorsInput{
		Session:   session,
		StartDate: start,
		EndDate:   end,
		Basis:     dashboard.Basis(ctx.Query("basis")),
	})
	if !finish(err) {
		return
	}
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	// The use case validated the range already.
	r, _ := valueobject.NewDateRange(start, end)
	ctx.JSON(http.StatusOK, dto.ToIndicatorsResponse(r, output))
}

// GetCashFlow handles GET /dashboard/cash-flow requests.
func (c *DashboardController) GetCashFlow(ctx *gin.Context) {
	session, ok := requireSession(ctx)
	if !ok {
		return
	}

	start, end, ok := parseRange(ctx)
	if !ok {
		return
	}

	reqCtx, finish, ok := c.sequence(ctx, session, "cash-flow")
	if !ok {
		return
	}

	output, err := c.getCashFlowUseCase.Execute(reqCtx, dashboard.GetCashFlowInput{
		Session:     session,
		StartDate:   start,
		EndDate:     end,
		Granularity: dashboard.Granularity(ctx.DefaultQuery("granularity", string(dashboard.GranularityDaily))),
	})
	if !finish(err) {
		return
	}
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowResponse(output))
}

// parseRange reads start_date and end_date. Missing values are left zero so
// the use case reports them; malformed values are rejected here.
func parseRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	start, err := dto.ParseDate(ctx.Query("start_date"))
	if err != nil {
		badRequest(ctx, "Invalid start_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateFormat))
		return time.Time{}, time.Time{}, false
	}

	end, err := dto.ParseDate(ctx.Query("end_date"))
	if err != nil {
		badRequest(ctx, "Invalid end_date format. Use YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateFormat))
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

// sequence registers the request with the sequencer when the client sent
// RequestSeqHeader. The returned finish func must be called with the
// computation error; it writes the stale response and returns false when a
// newer request of the same view superseded this one.
func (c *DashboardController) sequence(ctx *gin.Context, session entity.Session, view string) (context.Context, func(error) bool, bool) {
	seq, err := strconv.ParseInt(ctx.GetHeader(RequestSeqHeader), 10, 64)
	if err != nil || c.sequencer == nil {
		return ctx.Request.Context(), func(error) bool { return true }, true
	}

	key := session.UserID.String() + "|" + view
	reqCtx, ticket, ok := c.sequencer.Begin(ctx.Request.Context(), key, seq)
	if !ok {
		staleRequest(ctx)
		return nil, nil, false
	}

	finish := func(computeErr error) bool {
		current := ticket.Finish()
		if !current || errors.Is(computeErr, context.Canceled) {
			staleRequest(ctx)
			return false
		}
		return true
	}
	return reqCtx, finish, true
}

func staleRequest(ctx *gin.Context) {
	ctx.JSON(http.StatusConflict, dto.ErrorResponse{
		Error: "A newer request for this view superseded this one",
		Code:  string(domainerror.ErrCodeStaleRequest),
	})
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := http.StatusBadRequest
		switch dashErr.Code {
		case domainerror.ErrCodeStaleRequest:
			status = http.StatusConflict
		case domainerror.ErrCodeDashboardInternalError:
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	internalError(ctx, err)
}
