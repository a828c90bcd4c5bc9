package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/visionassist/backend/internal/domain/analytics"
	"github.com/visionassist/backend/internal/domain/shared"
)

var hundred = decimal.NewFromInt(100)

// DefaultCostFallbackRatio estimates manufacturing cost from the sale
// price when no cost data is recorded.
var DefaultCostFallbackRatio = decimal.NewFromFloat(0.6)

// DefaultMAUMonths is the default look-back for monthly active users
const DefaultMAUMonths = 6

// DefaultIncidentMonths is the default look-back for incident reporting
const DefaultIncidentMonths = 3

// KPIService computes dashboard KPIs from windowed analytics queries.
// It reads and transforms only; results are never persisted.
type KPIService struct {
	repo              analytics.Repository
	costFallbackRatio decimal.Decimal
	now               func() time.Time
}

// Option configures a KPIService
type Option func(*KPIService)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(s *KPIService) { s.now = now }
}

// WithCostFallbackRatio overrides the estimated cost ratio
func WithCostFallbackRatio(ratio decimal.Decimal) Option {
	return func(s *KPIService) { s.costFallbackRatio = ratio }
}

// NewKPIService creates a new KPIService
func NewKPIService(repo analytics.Repository, opts ...Option) *KPIService {
	s := &KPIService{
		repo:              repo,
		costFallbackRatio: DefaultCostFallbackRatio,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PeriodRevenue describes the revenue observed in one comparison window
type PeriodRevenue struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Revenue   float64   `json:"revenue"`
}

// GrowthRates holds the growth percentages of the revenue comparison
type GrowthRates struct {
	MonthOverMonth float64 `json:"month_over_month"`
	YearOverYear   float64 `json:"year_over_year"`
}

// RevenueGrowthResponse is the revenue growth KPI payload
type RevenueGrowthResponse struct {
	CurrentPeriod          PeriodRevenue `json:"current_period"`
	PreviousPeriod         PeriodRevenue `json:"previous_period"`
	PreviousYearSamePeriod PeriodRevenue `json:"previous_year_same_period"`
	Growth                 GrowthRates   `json:"growth"`
}

// RevenueGrowth compares month-to-date revenue against the previous full
// month and the same month one year earlier. A zero baseline is reported
// as 100% growth.
func (s *KPIService) RevenueGrowth(ctx context.Context, endDate *time.Time) (*RevenueGrowthResponse, error) {
	asOf := s.now()
	if endDate != nil {
		asOf = *endDate
	}

	current := Window{Start: MonthStart(asOf), End: asOf}
	previous := PreviousMonth(asOf)
	lastYear := SameMonthLastYear(asOf)

	currentRevenue, err := s.revenueIn(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate revenue growth: %w", err)
	}
	previousRevenue, err := s.revenueIn(ctx, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate revenue growth: %w", err)
	}
	lastYearRevenue, err := s.revenueIn(ctx, lastYear)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate revenue growth: %w", err)
	}

	return &RevenueGrowthResponse{
		CurrentPeriod: PeriodRevenue{
			StartDate: current.Start,
			EndDate:   current.End,
			Revenue:   round2(currentRevenue),
		},
		PreviousPeriod: PeriodRevenue{
			StartDate: previous.Start,
			EndDate:   previous.End,
			Revenue:   round2(previousRevenue),
		},
		PreviousYearSamePeriod: PeriodRevenue{
			StartDate: lastYear.Start,
			EndDate:   lastYear.End,
			Revenue:   round2(lastYearRevenue),
		},
		Growth: GrowthRates{
			MonthOverMonth: round2(growthRate(currentRevenue, previousRevenue)),
			YearOverYear:   round2(growthRate(currentRevenue, lastYearRevenue)),
		},
	}, nil
}

// ProfitMarginResponse is the profit margin KPI payload
type ProfitMarginResponse struct {
	Period                Window  `json:"period"`
	TotalRevenue          float64 `json:"total_revenue"`
	TotalCost             float64 `json:"total_cost"`
	GrossProfit           float64 `json:"gross_profit"`
	GrossMarginPercentage float64 `json:"gross_margin_percentage"`
	AverageSellingPrice   float64 `json:"average_selling_price"`
	AverageCost           float64 `json:"average_cost"`
	SaleCount             int     `json:"sale_count"`
}

// ProfitMargin computes gross margin for the window, defaulting to the
// current month to date. Sales without recorded manufacturing cost use
// the estimated cost ratio; zero-price sales contribute no cost at all.
func (s *KPIService) ProfitMargin(ctx context.Context, startDate, endDate *time.Time) (*ProfitMarginResponse, error) {
	asOf := s.now()
	window := Window{Start: MonthStart(asOf), End: asOf}
	if startDate != nil {
		window.Start = *startDate
	}
	if endDate != nil {
		window.End = *endDate
	}

	sales, err := s.repo.SalesBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate profit margins: %w", err)
	}

	totalRevenue := decimal.Zero
	totalCost := decimal.Zero
	itemsWithCostData := 0
	for _, sale := range sales {
		totalRevenue = totalRevenue.Add(sale.Price)
		if cost, ok := s.saleCost(sale); ok {
			totalCost = totalCost.Add(cost)
			itemsWithCostData++
		}
	}

	grossProfit := totalRevenue.Sub(totalCost)

	grossMargin := decimal.Zero
	if totalRevenue.IsPositive() {
		grossMargin = grossProfit.Div(totalRevenue).Mul(hundred)
	}
	averageSellingPrice := decimal.Zero
	if len(sales) > 0 {
		averageSellingPrice = totalRevenue.Div(decimal.NewFromInt(int64(len(sales))))
	}
	averageCost := decimal.Zero
	if itemsWithCostData > 0 {
		averageCost = totalCost.Div(decimal.NewFromInt(int64(itemsWithCostData)))
	}

	return &ProfitMarginResponse{
		Period:                window,
		TotalRevenue:          round2(totalRevenue),
		TotalCost:             round2(totalCost),
		GrossProfit:           round2(grossProfit),
		GrossMarginPercentage: round2(grossMargin),
		AverageSellingPrice:   round2(averageSellingPrice),
		AverageCost:           round2(averageCost),
		SaleCount:             len(sales),
	}, nil
}

// MonthlyActivity is one month's entry in the MAU series
type MonthlyActivity struct {
	Month            string  `json:"month"`
	ActiveUsers      int64   `json:"active_users"`
	PercentageActive float64 `json:"percentage_active"`
	Period           Window  `json:"period"`
}

// MonthlyActiveUsersResponse is the MAU KPI payload
type MonthlyActiveUsersResponse struct {
	CurrentMAU           int64             `json:"current_mau"`
	TotalRegisteredUsers int64             `json:"total_registered_users"`
	ActivationRate       float64           `json:"activation_rate"`
	Trend                float64           `json:"trend"`
	MonthlyData          []MonthlyActivity `json:"monthly_data"`
}

// MonthlyActiveUsers returns per-month active user counts, most recent
// month first. The trend compares the two most recent months; a zero
// previous month reads as 100% growth when the current month has users.
func (s *KPIService) MonthlyActiveUsers(ctx context.Context, months int) (*MonthlyActiveUsersResponse, error) {
	if months <= 0 {
		months = DefaultMAUMonths
	}
	asOf := s.now()

	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate monthly active users: %w", err)
	}

	monthly := make([]MonthlyActivity, 0, months)
	for i := 0; i < months; i++ {
		window := MonthWindow(asOf, i)
		active, err := s.repo.ActiveUserCount(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate monthly active users: %w", err)
		}

		percentage := decimal.Zero
		if totalUsers > 0 {
			percentage = decimal.NewFromInt(active).Div(decimal.NewFromInt(totalUsers)).Mul(hundred)
		}
		monthly = append(monthly, MonthlyActivity{
			Month:            MonthKey(window.Start),
			ActiveUsers:      active,
			PercentageActive: round2(percentage),
			Period:           window,
		})
	}

	trend := decimal.Zero
	if len(monthly) >= 2 {
		current := decimal.NewFromInt(monthly[0].ActiveUsers)
		previous := decimal.NewFromInt(monthly[1].ActiveUsers)
		switch {
		case previous.IsZero() && current.IsPositive():
			trend = hundred
		case previous.IsZero():
			trend = decimal.Zero
		default:
			trend = current.Sub(previous).Div(previous).Mul(hundred)
		}
	}

	return &MonthlyActiveUsersResponse{
		CurrentMAU:           monthly[0].ActiveUsers,
		TotalRegisteredUsers: totalUsers,
		ActivationRate:       monthly[0].PercentageActive,
		Trend:                round2(trend),
		MonthlyData:          monthly,
	}, nil
}

// MonthCount pairs a "YYYY-M" month key with an incident count
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// SecurityIncidentsResponse is the security incidents KPI payload
type SecurityIncidentsResponse struct {
	Period                 Window           `json:"period"`
	TotalIncidents         int              `json:"total_incidents"`
	IncidentsPerActiveUser float64          `json:"incidents_per_active_user"`
	SeverityBreakdown      map[string]int64 `json:"severity_breakdown"`
	MonthlyTrend           []MonthCount     `json:"monthly_trend"`
	ActiveUsers            int64            `json:"active_users"`
}

// SecurityIncidents aggregates incidents for the window, defaulting to
// the last three months, with a severity breakdown and a chronological
// monthly trend.
func (s *KPIService) SecurityIncidents(ctx context.Context, startDate, endDate *time.Time) (*SecurityIncidentsResponse, error) {
	asOf := s.now()
	window := Window{
		Start: MonthStart(asOf).AddDate(0, -DefaultIncidentMonths, 0),
		End:   asOf,
	}
	if startDate != nil {
		window.Start = *startDate
	}
	if endDate != nil {
		window.End = *endDate
	}

	incidents, err := s.repo.IncidentsBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate security incidents: %w", err)
	}
	activeUsers, err := s.repo.ActiveUserCount(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate security incidents: %w", err)
	}

	severityBreakdown := make(map[string]int64)
	monthlyCounts := make(map[string]int64)
	for _, incident := range incidents {
		severity := incident.Severity
		if severity == "" {
			severity = "unknown"
		}
		severityBreakdown[severity]++
		monthlyCounts[MonthKey(incident.ReportedAt)]++
	}

	monthlyTrend := make([]MonthCount, 0, len(monthlyCounts))
	for month, count := range monthlyCounts {
		monthlyTrend = append(monthlyTrend, MonthCount{Month: month, Count: count})
	}
	sort.Slice(monthlyTrend, func(i, j int) bool {
		var yi, mi, yj, mj int
		fmt.Sscanf(monthlyTrend[i].Month, "%d-%d", &yi, &mi)
		fmt.Sscanf(monthlyTrend[j].Month, "%d-%d", &yj, &mj)
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})

	perUser := decimal.Zero
	if activeUsers > 0 {
		perUser = decimal.NewFromInt(int64(len(incidents))).Div(decimal.NewFromInt(activeUsers))
	}

	return &SecurityIncidentsResponse{
		Period:                 window,
		TotalIncidents:         len(incidents),
		IncidentsPerActiveUser: round4(perUser),
		SeverityBreakdown:      severityBreakdown,
		MonthlyTrend:           monthlyTrend,
		ActiveUsers:            activeUsers,
	}, nil
}

// ProjectionPeriod describes the calendar period being projected
type ProjectionPeriod struct {
	Type             string    `json:"type"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	DaysInPeriod     int       `json:"days_in_period"`
	DaysElapsed      int       `json:"days_elapsed"`
	PercentCompleted float64   `json:"percent_completed"`
}

// ProjectionFigures holds actual-to-date figures and their progress
// against the projection
type ProjectionFigures struct {
	Revenue         float64 `json:"revenue"`
	Profit          float64 `json:"profit"`
	RevenueProgress float64 `json:"revenue_progress,omitempty"`
	ProfitProgress  float64 `json:"profit_progress,omitempty"`
}

// PeriodProjectionsResponse is the period projection KPI payload
type PeriodProjectionsResponse struct {
	Period    ProjectionPeriod  `json:"period"`
	Current   ProjectionFigures `json:"current"`
	Projected ProjectionFigures `json:"projected"`
}

// PeriodProjections projects end-of-period revenue and profit from the
// daily average observed so far in the current month or quarter.
func (s *KPIService) PeriodProjections(ctx context.Context, period string) (*PeriodProjectionsResponse, error) {
	asOf := s.now()

	var window Window
	var daysInPeriod, daysElapsed int
	switch period {
	case "month":
		window = Window{Start: MonthStart(asOf), End: MonthEnd(asOf)}
		daysInPeriod = DaysInMonth(asOf)
		daysElapsed = asOf.Day()
	case "quarter":
		window = CurrentQuarter(asOf)
		for m := 0; m < 3; m++ {
			daysInPeriod += DaysInMonth(window.Start.AddDate(0, m, 0))
		}
		monthsElapsed := int(asOf.Month()) - int(window.Start.Month())
		for m := 0; m < monthsElapsed; m++ {
			daysElapsed += DaysInMonth(window.Start.AddDate(0, m, 0))
		}
		daysElapsed += asOf.Day()
	default:
		return nil, shared.NewDomainError("INVALID_INPUT", "Projection period must be 'month' or 'quarter'")
	}
	if daysElapsed > daysInPeriod {
		daysElapsed = daysInPeriod
	}

	sales, err := s.repo.SalesBetween(ctx, window.Start, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate %s projections: %w", period, err)
	}

	currentRevenue := decimal.Zero
	currentCosts := decimal.Zero
	for _, sale := range sales {
		currentRevenue = currentRevenue.Add(sale.Price)
		if cost, ok := s.saleCost(sale); ok {
			currentCosts = currentCosts.Add(cost)
		}
	}
	currentProfit := currentRevenue.Sub(currentCosts)

	dailyAvgRevenue := decimal.Zero
	dailyAvgProfit := decimal.Zero
	if daysElapsed > 0 {
		elapsed := decimal.NewFromInt(int64(daysElapsed))
		dailyAvgRevenue = currentRevenue.Div(elapsed)
		dailyAvgProfit = currentProfit.Div(elapsed)
	}

	total := decimal.NewFromInt(int64(daysInPeriod))
	projectedRevenue := dailyAvgRevenue.Mul(total)
	projectedProfit := dailyAvgProfit.Mul(total)

	percentCompleted := decimal.NewFromInt(int64(daysElapsed)).Div(total).Mul(hundred)
	revenueProgress := decimal.Zero
	if projectedRevenue.IsPositive() {
		revenueProgress = currentRevenue.Div(projectedRevenue).Mul(hundred)
	}
	profitProgress := decimal.Zero
	if projectedProfit.IsPositive() {
		profitProgress = currentProfit.Div(projectedProfit).Mul(hundred)
	}

	return &PeriodProjectionsResponse{
		Period: ProjectionPeriod{
			Type:             period,
			StartDate:        window.Start,
			EndDate:          window.End,
			DaysInPeriod:     daysInPeriod,
			DaysElapsed:      daysElapsed,
			PercentCompleted: round2(percentCompleted),
		},
		Current: ProjectionFigures{
			Revenue:         round2(currentRevenue),
			Profit:          round2(currentProfit),
			RevenueProgress: round2(revenueProgress),
			ProfitProgress:  round2(profitProgress),
		},
		Projected: ProjectionFigures{
			Revenue: round2(projectedRevenue),
			Profit:  round2(projectedProfit),
		},
	}, nil
}

// SalesTotalsResponse is the headline sales counters payload
type SalesTotalsResponse struct {
	TotalSales   int64   `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalUsers   int64   `json:"total_users"`
}

// SalesTotals returns the all-time sales count, revenue and user count
func (s *KPIService) SalesTotals(ctx context.Context) (*SalesTotalsResponse, error) {
	totalSales, err := s.repo.CountSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate sales totals: %w", err)
	}
	totalRevenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate sales totals: %w", err)
	}
	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate sales totals: %w", err)
	}

	return &SalesTotalsResponse{
		TotalSales:   totalSales,
		TotalRevenue: round2(totalRevenue),
		TotalUsers:   totalUsers,
	}, nil
}

// TopProduct is one device type's share of the installed base
type TopProduct struct {
	ProductName      string  `json:"product_name"`
	DeviceCount      int64   `json:"device_count"`
	DevicePercentage float64 `json:"device_percentage"`
}

// TopProducts ranks device types by their share of all devices,
// descending.
func (s *KPIService) TopProducts(ctx context.Context) ([]TopProduct, error) {
	totalDevices, err := s.repo.CountDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate top products: %w", err)
	}
	byType, err := s.repo.DevicesByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate top products: %w", err)
	}

	products := make([]TopProduct, 0, len(byType))
	for _, tc := range byType {
		percentage := decimal.Zero
		if totalDevices > 0 {
			percentage = decimal.NewFromInt(tc.Count).Div(decimal.NewFromInt(totalDevices)).Mul(hundred)
		}
		products = append(products, TopProduct{
			ProductName:      tc.DeviceType,
			DeviceCount:      tc.Count,
			DevicePercentage: round2(percentage),
		})
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].DevicePercentage > products[j].DevicePercentage
	})
	return products, nil
}

func (s *KPIService) revenueIn(ctx context.Context, w Window) (decimal.Decimal, error) {
	sales, err := s.repo.SalesBetween(ctx, w.Start, w.End)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Price)
	}
	return total, nil
}

// saleCost resolves the cost of a sale. Zero recorded cost falls back to
// the estimate, and zero-price sales carry no cost at all.
func (s *KPIService) saleCost(sale analytics.SaleRecord) (decimal.Decimal, bool) {
	if sale.ManufacturingCost != nil && !sale.ManufacturingCost.IsZero() {
		return *sale.ManufacturingCost, true
	}
	if !sale.Price.IsZero() {
		return sale.Price.Mul(s.costFallbackRatio), true
	}
	return decimal.Zero, false
}

func growthRate(current, baseline decimal.Decimal) decimal.Decimal {
	if baseline.IsZero() {
		return hundred
	}
	return current.Sub(baseline).Div(baseline).Mul(hundred)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func round4(d decimal.Decimal) float64 {
	f, _ := d.Round(4).Float64()
	return f
}
