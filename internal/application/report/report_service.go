package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	kpi "github.com/visionassist/backend/internal/application/analytics"
	"github.com/visionassist/backend/internal/domain/report"
)

// Report names used in export filenames
const (
	UsageReportName = "System_Usage_Report"
	SalesReportName = "Sales_Report"
	ZonesReportName = "Zones_Report"
	MAUReportName   = "Monthly_Active_Users_Report"
)

var hundred = decimal.NewFromInt(100)

// ReportService assembles the named report payloads from read-side
// repositories. Payloads are plain JSON-serializable structures handed
// to the export pipeline unchanged.
type ReportService struct {
	usageRepo report.UsageDataRepository
	salesRepo report.SalesDataRepository
	zoneRepo  report.ZoneDataRepository
	userRepo  report.UserDataRepository
	now       func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	usageRepo report.UsageDataRepository,
	salesRepo report.SalesDataRepository,
	zoneRepo report.ZoneDataRepository,
	userRepo report.UserDataRepository,
) *ReportService {
	return &ReportService{
		usageRepo: usageRepo,
		salesRepo: salesRepo,
		zoneRepo:  zoneRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// WithClock overrides the time source, used in tests
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// ===================== System usage report =====================

// UsageReportData is the "System_Usage_Report" payload
type UsageReportData struct {
	DeviceUsage              []report.DeviceUsageCount  `json:"device_usage"`
	ActiveUsersCount         int                        `json:"active_users_count"`
	ActiveUsersSummary       []report.UserActivityCount `json:"active_users_summary"`
	DeviceStatusDistribution []report.StatusCount       `json:"device_status_distribution"`
	LogActivity              int64                      `json:"log_activity"`
	HelpRequests             int64                      `json:"help_requests"`
}

// UsageReport builds the system usage report for the optional window
func (s *ReportService) UsageReport(ctx context.Context, start, end *time.Time) (*UsageReportData, error) {
	deviceUsage, err := s.usageRepo.DeviceUsageCounts(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to generate usage report: %w", err)
	}
	usageByUser, err := s.usageRepo.UsageByUser(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to generate usage report: %w", err)
	}
	statusDistribution, err := s.usageRepo.DeviceStatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate usage report: %w", err)
	}
	logActivity, err := s.usageRepo.LogCount(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to generate usage report: %w", err)
	}
	helpRequests, err := s.usageRepo.HelpRequestCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate usage report: %w", err)
	}

	return &UsageReportData{
		DeviceUsage:              deviceUsage,
		ActiveUsersCount:         len(usageByUser),
		ActiveUsersSummary:       usageByUser,
		DeviceStatusDistribution: statusDistribution,
		LogActivity:              logActivity,
		HelpRequests:             helpRequests,
	}, nil
}

// ===================== Sales report =====================

// DeviceTypeSales groups sale count and revenue for one device type
type DeviceTypeSales struct {
	DeviceType string  `json:"device_type"`
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
}

// MonthlySales is one month's entry in the sales trend
type MonthlySales struct {
	Month      time.Time `json:"month"`
	SalesCount int64     `json:"sales_count"`
	Revenue    float64   `json:"revenue"`
}

// SalesReportData is the "Sales_Report" payload
type SalesReportData struct {
	TotalSales        int64             `json:"total_sales"`
	TotalRevenue      float64           `json:"total_revenue"`
	DeviceTypeSales   []DeviceTypeSales `json:"device_type_sales"`
	MonthlySalesTrend []MonthlySales    `json:"monthly_sales_trend"`
}

// SalesReport builds the sales report for the optional window
func (s *ReportService) SalesReport(ctx context.Context, start, end *time.Time) (*SalesReportData, error) {
	totalSales, err := s.salesRepo.CountSales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to generate sales report: %w", err)
	}
	records, err := s.salesRepo.SaleRecords(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to generate sales report: %w", err)
	}

	// group by device type preserving first-seen order
	totalRevenue := decimal.Zero
	typeIndex := make(map[string]int)
	byType := make([]DeviceTypeSales, 0)
	typeRevenue := make(map[string]decimal.Decimal)
	for _, r := range records {
		idx, ok := typeIndex[r.DeviceType]
		if !ok {
			idx = len(byType)
			typeIndex[r.DeviceType] = idx
			byType = append(byType, DeviceTypeSales{DeviceType: r.DeviceType})
			typeRevenue[r.DeviceType] = decimal.Zero
		}
		byType[idx].SalesCount++
		typeRevenue[r.DeviceType] = typeRevenue[r.DeviceType].Add(r.Price)
		totalRevenue = totalRevenue.Add(r.Price)
	}
	for i := range byType {
		byType[i].Revenue = round2(typeRevenue[byType[i].DeviceType])
	}

	// monthly trend, calendar-truncated and chronological
	monthIndex := make(map[time.Time]int)
	trend := make([]MonthlySales, 0)
	monthRevenue := make(map[time.Time]decimal.Decimal)
	for _, r := range records {
		month := kpi.MonthStart(r.CreatedAt)
		idx, ok := monthIndex[month]
		if !ok {
			idx = len(trend)
			monthIndex[month] = idx
			trend = append(trend, MonthlySales{Month: month})
			monthRevenue[month] = decimal.Zero
		}
		trend[idx].SalesCount++
		monthRevenue[month] = monthRevenue[month].Add(r.Price)
	}
	for i := range trend {
		trend[i].Revenue = round2(monthRevenue[trend[i].Month])
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Month.Before(trend[j].Month) })

	return &SalesReportData{
		TotalSales:        totalSales,
		TotalRevenue:      round2(totalRevenue),
		DeviceTypeSales:   byType,
		MonthlySalesTrend: trend,
	}, nil
}

// ===================== Zones report =====================

// ZoneTypeCount pairs a zone type with its count
type ZoneTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// MonthlyZones is one month's entry in the zone creation series
type MonthlyZones struct {
	Month time.Time `json:"month"`
	Count int64     `json:"count"`
}

// EnvironmentZones groups zones by their environment
type EnvironmentZones struct {
	EnvironmentID   *uuid.UUID `json:"environment_id,omitempty"`
	EnvironmentName string     `json:"environment_name"`
	Count           int64      `json:"count"`
}

// ZoneReportData is the "Zones_Report" payload
type ZoneReportData struct {
	TotalZones           int64              `json:"total_zones"`
	ZonesByType          []ZoneTypeCount    `json:"zones_by_type"`
	ZonesCreatedOverTime []MonthlyZones     `json:"zones_created_over_time"`
	ZonesByEnvironment   []EnvironmentZones `json:"zones_by_environment"`
}

// ZoneReport builds the zones report. The window filters the total count
// and the creation series; type and environment groupings are all-time.
func (s *ReportService) ZoneReport(ctx context.Context, start, end *time.Time) (*ZoneReportData, error) {
	totalZones, err := s.zoneRepo.CountZones(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to generate zones report: %w", err)
	}
	zones, err := s.zoneRepo.AllZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate zones report: %w", err)
	}

	typeIndex := make(map[string]int)
	byType := make([]ZoneTypeCount, 0)
	monthIndex := make(map[time.Time]int)
	overTime := make([]MonthlyZones, 0)
	envIndex := make(map[string]int)
	byEnv := make([]EnvironmentZones, 0)

	for _, z := range zones {
		idx, ok := typeIndex[z.Type]
		if !ok {
			idx = len(byType)
			typeIndex[z.Type] = idx
			byType = append(byType, ZoneTypeCount{Type: z.Type})
		}
		byType[idx].Count++

		if inWindow(z.CreatedAt, start, end) {
			month := kpi.MonthStart(z.CreatedAt)
			mi, ok := monthIndex[month]
			if !ok {
				mi = len(overTime)
				monthIndex[month] = mi
				overTime = append(overTime, MonthlyZones{Month: month})
			}
			overTime[mi].Count++
		}

		envKey := "unassigned"
		envName := "Unassigned"
		if z.EnvironmentID != nil {
			envKey = z.EnvironmentID.String()
			envName = z.EnvironmentName
			if envName == "" {
				envName = fmt.Sprintf("Environment %s", envKey)
			}
		}
		ei, ok := envIndex[envKey]
		if !ok {
			ei = len(byEnv)
			envIndex[envKey] = ei
			byEnv = append(byEnv, EnvironmentZones{
				EnvironmentID:   z.EnvironmentID,
				EnvironmentName: envName,
			})
		}
		byEnv[ei].Count++
	}

	sort.Slice(overTime, func(i, j int) bool { return overTime[i].Month.Before(overTime[j].Month) })

	return &ZoneReportData{
		TotalZones:           totalZones,
		ZonesByType:          byType,
		ZonesCreatedOverTime: overTime,
		ZonesByEnvironment:   byEnv,
	}, nil
}

// ===================== Monthly active users report =====================

// UserDetail is one active user's entry in the monthly detail
type UserDetail struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// MonthlyUserStats is one month's entry in the MAU report
type MonthlyUserStats struct {
	Month                string                   `json:"month"`
	MonthName            string                   `json:"month_name"`
	ActiveUsers          int64                    `json:"active_users"`
	PercentageActive     float64                  `json:"percentage_active"`
	Period               kpi.Window               `json:"period"`
	UserDetails          []UserDetail             `json:"user_details"`
	ActivityDistribution []report.UserActionCount `json:"activity_distribution"`
}

// ReportPeriod describes the months a MAU report covers
type ReportPeriod struct {
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalMonths int       `json:"total_months"`
}

// MAUReportData is the "Monthly_Active_Users_Report" payload
type MAUReportData struct {
	ReportPeriod         ReportPeriod       `json:"report_period"`
	CurrentMAU           int64              `json:"current_mau"`
	TotalRegisteredUsers int64              `json:"total_registered_users"`
	ActivationRate       float64            `json:"activation_rate"`
	Trend                float64            `json:"trend"`
	AverageActiveUsers   float64            `json:"average_active_users"`
	MonthlyData          []MonthlyUserStats `json:"monthly_data"`
}

// MonthlyActiveUsersReport builds the MAU report: the KPI series enriched
// with per-user detail and activity distribution per month.
func (s *ReportService) MonthlyActiveUsersReport(ctx context.Context, months int, start, end *time.Time) (*MAUReportData, error) {
	if months <= 0 {
		months = kpi.DefaultMAUMonths
	}
	asOf := s.now()
	if end != nil {
		asOf = *end
	}

	totalUsers, err := s.userRepo.CountUsers(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to generate monthly active users report: %w", err)
	}

	monthly := make([]MonthlyUserStats, 0, months)
	for i := 0; i < months; i++ {
		window := kpi.MonthWindow(asOf, i)
		if start != nil && window.Start.Before(*start) {
			continue
		}

		activeUsers, err := s.userRepo.ActiveUsersBetween(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("failed to generate monthly active users report: %w", err)
		}
		activity, err := s.userRepo.ActivityByUser(ctx, window.Start, window.End)
		if err != nil {
			return nil, fmt.Errorf("failed to generate monthly active users report: %w", err)
		}

		activeCount := int64(len(activeUsers))
		percentage := decimal.Zero
		if totalUsers > 0 {
			percentage = decimal.NewFromInt(activeCount).Div(decimal.NewFromInt(totalUsers)).Mul(hundred)
		}

		details := make([]UserDetail, 0, len(activeUsers))
		for _, u := range activeUsers {
			name := u.Name
			if name == "" {
				name = "Unknown"
			}
			details = append(details, UserDetail{
				ID:        u.ID,
				Email:     u.Email,
				Name:      name,
				LastLogin: u.LastLogin,
			})
		}

		monthly = append(monthly, MonthlyUserStats{
			Month:                kpi.MonthKey(window.Start),
			MonthName:            window.Start.Format("January 2006"),
			ActiveUsers:          activeCount,
			PercentageActive:     round2(percentage),
			Period:               window,
			UserDetails:          details,
			ActivityDistribution: activity,
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

	average := decimal.Zero
	if len(monthly) > 0 {
		sum := decimal.Zero
		for _, m := range monthly {
			sum = sum.Add(decimal.NewFromInt(m.ActiveUsers))
		}
		average = sum.Div(decimal.NewFromInt(int64(len(monthly))))
	}

	periodStart := kpi.MonthWindow(asOf, months-1).Start
	if start != nil {
		periodStart = *start
	}

	var currentMAU int64
	var activationRate float64
	if len(monthly) > 0 {
		currentMAU = monthly[0].ActiveUsers
		activationRate = monthly[0].PercentageActive
	}

	return &MAUReportData{
		ReportPeriod: ReportPeriod{
			StartDate:   periodStart,
			EndDate:     asOf,
			TotalMonths: len(monthly),
		},
		CurrentMAU:           currentMAU,
		TotalRegisteredUsers: totalUsers,
		ActivationRate:       activationRate,
		Trend:                round2(trend),
		AverageActiveUsers:   round2(average),
		MonthlyData:          monthly,
	}, nil
}

func inWindow(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
