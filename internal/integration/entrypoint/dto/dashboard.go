package dto

import (
	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/usecase/dashboard"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/valueobject"
)

// PeriodResponse represents the date range a report covers.
type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// LineItemResponse represents one entry or order behind a DRE line.
type LineItemResponse struct {
	SourceID    string `json:"source_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

// BucketResponse represents a DRE line with its items.
type BucketResponse struct {
	Key        string             `json:"key"`
	Name       string             `json:"name"`
	CategoryID *string            `json:"category_id"`
	Total      string             `json:"total"`
	Items      []LineItemResponse `json:"items"`
}

// RatiosResponse holds the DRE ratios as percentages of gross revenue.
type RatiosResponse struct {
	ContributionMargin float64 `json:"contribution_margin"`
	NetMargin          float64 `json:"net_margin"`
	ExpenseRatio       float64 `json:"expense_ratio"`
	FixedCostRatio     float64 `json:"fixed_cost_ratio"`
}

// DREResponse represents the response for the income statement API.
type DREResponse struct {
	Data DREData `json:"data"`
}

// DREData represents the data section of the income statement response.
type DREData struct {
	Period                   PeriodResponse   `json:"period"`
	Basis                    string           `json:"basis"`
	Revenue                  []BucketResponse `json:"revenue"`
	GrossRevenue             string           `json:"gross_revenue"`
	OperatingExpenses        BucketResponse   `json:"operating_expenses"`
	ContributionMargin       string           `json:"contribution_margin"`
	FixedCosts               BucketResponse   `json:"fixed_costs"`
	NetResult                string           `json:"net_result"`
	Ratios                   RatiosResponse   `json:"ratios"`
	UnclassifiedVariableCost BucketResponse   `json:"unclassified_variable_cost"`
}

// EstimateLineResponse represents the projection of one side of the result.
type EstimateLineResponse struct {
	Current        string `json:"current"`
	DailyAverage   string `json:"daily_average"`
	EstimatedTotal string `json:"estimated_total"`
	DaysElapsed    int    `json:"days_elapsed"`
	TotalDays      int    `json:"total_days"`
}

// EstimateResponse represents the response for the estimate API.
type EstimateResponse struct {
	Data EstimateData `json:"data"`
}

// EstimateData represents the data section of the estimate response.
type EstimateData struct {
	Period          PeriodResponse       `json:"period"`
	Today           string               `json:"today"`
	Revenue         EstimateLineResponse `json:"revenue"`
	Expense         EstimateLineResponse `json:"expense"`
	EstimatedResult string               `json:"estimated_result"`
}

// OpenBalanceResponse represents open payables or receivables.
type OpenBalanceResponse struct {
	Pending      string `json:"pending"`
	PendingCount int    `json:"pending_count"`
	Overdue      string `json:"overdue"`
	OverdueCount int    `json:"overdue_count"`
	Total        string `json:"total"`
}

// IndicatorsResponse represents the response for the indicators API.
type IndicatorsResponse struct {
	Data IndicatorsData `json:"data"`
}

// IndicatorsData represents the data section of the indicators response.
type IndicatorsData struct {
	Period           PeriodResponse      `json:"period"`
	Revenue          string              `json:"revenue"`
	OperatingExpense string              `json:"operating_expense"`
	FixedCost        string              `json:"fixed_cost"`
	VariableCost     string              `json:"variable_cost"`
	TotalExpense     string              `json:"total_expense"`
	NetResult        string              `json:"net_result"`
	Receivables      OpenBalanceResponse `json:"receivables"`
	Payables         OpenBalanceResponse `json:"payables"`
	OrderCount       int                 `json:"order_count"`
	AverageTicket    string              `json:"average_ticket"`
}

// CashFlowPointResponse represents one period of the cash flow series.
type CashFlowPointResponse struct {
	Date           string `json:"date"`
	PeriodLabel    string `json:"period_label"`
	Inflow         string `json:"inflow"`
	Outflow        string `json:"outflow"`
	Net            string `json:"net"`
	RunningBalance string `json:"running_balance"`
}

// CashFlowResponse represents the response for the cash flow API.
type CashFlowResponse struct {
	Data CashFlowData `json:"data"`
}

// CashFlowData represents the data section of the cash flow response.
type CashFlowData struct {
	Period       PeriodResponse          `json:"period"`
	Granularity  string                  `json:"granularity"`
	Points       []CashFlowPointResponse `json:"points"`
	TotalInflow  string                  `json:"total_inflow"`
	TotalOutflow string                  `json:"total_outflow"`
	Net          string                  `json:"net"`
}

func toPeriodResponse(r valueobject.DateRange) PeriodResponse {
	return PeriodResponse{
		StartDate: FormatDate(r.Start),
		EndDate:   FormatDate(r.End),
		Days:      r.Days(),
	}
}

func toBucketResponse(b dashboard.Bucket) BucketResponse {
	items := make([]LineItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, LineItemResponse{
			SourceID:    item.SourceID.String(),
			Description: item.Description,
			Amount:      FormatAmount(item.Amount),
			Date:        FormatDate(item.Date),
		})
	}
	return BucketResponse{
		Key:        b.Key,
		Name:       b.Name,
		CategoryID: uuidString(b.CategoryID),
		Total:      FormatAmount(b.Total),
		Items:      items,
	}
}

// ToDREResponse converts a GetDREOutput to DREResponse DTO.
func ToDREResponse(output *dashboard.GetDREOutput) DREResponse {
	dre := output.DRE

	revenue := make([]BucketResponse, 0, len(dre.RevenueBuckets))
	for _, b := range dre.RevenueBuckets {
		revenue = append(revenue, toBucketResponse(b))
	}

	return DREResponse{
		Data: DREData{
			Period:             toPeriodResponse(dre.Range),
			Basis:              string(output.Basis),
			Revenue:            revenue,
			GrossRevenue:       FormatAmount(dre.GrossRevenue),
			OperatingExpenses:  toBucketResponse(dre.OperatingExpenses),
			ContributionMargin: FormatAmount(dre.ContributionMargin),
			FixedCosts:         toBucketResponse(dre.FixedCosts),
			NetResult:          FormatAmount(dre.NetResult),
			Ratios: RatiosResponse{
				ContributionMargin: dre.Ratios.ContributionMargin,
				NetMargin:          dre.Ratios.NetMargin,
				ExpenseRatio:       dre.Ratios.ExpenseRatio,
				FixedCostRatio:     dre.Ratios.FixedCostRatio,
			},
			UnclassifiedVariableCost: toBucketResponse(dre.UnclassifiedVariableCost),
		},
	}
}

func toEstimateLineResponse(e dashboard.EstimateResult) EstimateLineResponse {
	return EstimateLineResponse{
		Current:        FormatAmount(e.Current),
		DailyAverage:   FormatAmount(e.DailyAverage),
		EstimatedTotal: FormatAmount(e.EstimatedTotal),
		DaysElapsed:    e.DaysElapsed,
		TotalDays:      e.TotalDays,
	}
}

// ToEstimateResponse converts a GetEstimateOutput to EstimateResponse DTO.
func ToEstimateResponse(output *dashboard.GetEstimateOutput) EstimateResponse {
	return EstimateResponse{
		Data: EstimateData{
			Period:          toPeriodResponse(output.Range),
			Today:           FormatDate(output.Today),
			Revenue:         toEstimateLineResponse(output.Revenue),
			Expense:         toEstimateLineResponse(output.Expense),
			EstimatedResult: FormatAmount(output.EstimatedResult),
		},
	}
}

func toOpenBalanceResponse(b dashboard.OpenBalance) OpenBalanceResponse {
	return OpenBalanceResponse{
		Pending:      FormatAmount(b.Pending),
		PendingCount: b.PendingCount,
		Overdue:      FormatAmount(b.Overdue),
		OverdueCount: b.OverdueCount,
		Total:        FormatAmount(b.Total()),
	}
}

// ToIndicatorsResponse converts Indicators to IndicatorsResponse DTO.
func ToIndicatorsResponse(r valueobject.DateRange, ind *dashboard.Indicators) IndicatorsResponse {
	return IndicatorsResponse{
		Data: IndicatorsData{
			Period:           toPeriodResponse(r),
			Revenue:          FormatAmount(ind.Revenue),
			OperatingExpense: FormatAmount(ind.OperatingExpense),
			FixedCost:        FormatAmount(ind.FixedCost),
			VariableCost:     FormatAmount(ind.VariableCost),
			TotalExpense:     FormatAmount(ind.TotalExpense),
			NetResult:        FormatAmount(ind.NetResult),
			Receivables:      toOpenBalanceResponse(ind.Receivables),
			Payables:         toOpenBalanceResponse(ind.Payables),
			OrderCount:       ind.OrderCount,
			AverageTicket:    FormatAmount(ind.AverageTicket),
		},
	}
}

// ToCashFlowResponse converts a CashFlow to CashFlowResponse DTO.
func ToCashFlowResponse(cf *dashboard.CashFlow) CashFlowResponse {
	points := make([]CashFlowPointResponse, 0, len(cf.Points))
	for _, p := range cf.Points {
		points = append(points, CashFlowPointResponse{
			Date:           FormatDate(p.Date),
			PeriodLabel:    p.PeriodLabel,
			Inflow:         FormatAmount(p.Inflow),
			Outflow:        FormatAmount(p.Outflow),
			Net:            FormatAmount(p.Net),
			RunningBalance: FormatAmount(p.RunningBalance),
		})
	}

	return CashFlowResponse{
		Data: CashFlowData{
			Period:       toPeriodResponse(cf.Range),
			Granularity:  string(cf.Granularity),
			Points:       points,
			TotalInflow:  FormatAmount(cf.TotalInflow),
			TotalOutflow: FormatAmount(cf.TotalOutflow),
			Net:          FormatAmount(cf.Net),
		},
	}
}
