package router

import (
	"github.com/visionassist/backend/internal/interfaces/http/handler"
)

// Handlers bundles every handler the API exposes
type Handlers struct {
	System    *handler.SystemHandler
	Device    *handler.DeviceHandler
	Client    *handler.ClientHandler
	Sale      *handler.SaleHandler
	Zone      *handler.ZoneHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
}

// BuildRoutes assembles the full route tree under /api/<version>
func BuildRoutes(r *Router, h Handlers) {
	system := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo).
		GET("/ping", h.System.Ping).
		GET("/health", h.System.Health)

	devices := NewDomainGroup("devices", "/devices").
		POST("", h.Device.Create).
		GET("", h.Device.List).
		GET("/:id", h.Device.GetByID).
		PUT("/:id", h.Device.Update).
		DELETE("/:id", h.Device.Delete)

	clients := NewDomainGroup("clients", "/clients").
		POST("", h.Client.Create).
		GET("", h.Client.List).
		GET("/:id", h.Client.GetByID).
		PUT("/:id", h.Client.Update).
		DELETE("/:id", h.Client.Delete)

	sales := NewDomainGroup("sales", "/sales").
		POST("", h.Sale.Create).
		GET("", h.Sale.List).
		GET("/:id", h.Sale.GetByID).
		PUT("/:id", h.Sale.Update).
		DELETE("/:id", h.Sale.Delete)

	zones := NewDomainGroup("zones", "/zones").
		POST("", h.Zone.Create).
		GET("", h.Zone.List).
		GET("/:id", h.Zone.GetByID).
		PUT("/:id", h.Zone.Update).
		DELETE("/:id", h.Zone.Delete)

	environments := NewDomainGroup("environments", "/environments").
		POST("", h.Zone.CreateEnvironment).
		GET("", h.Zone.ListEnvironments)

	users := NewDomainGroup("users", "/users").
		POST("", h.User.Create).
		GET("", h.User.List).
		GET("/:id", h.User.GetByID).
		PUT("/:id", h.User.Update).
		DELETE("/:id", h.User.Delete)

	dashboard := NewDomainGroup("dashboard", "/dashboard").
		GET("/sales", h.Dashboard.SalesTotals).
		GET("/bestsellers", h.Dashboard.Bestsellers).
		GET("/revenue-growth", h.Dashboard.RevenueGrowth).
		GET("/profit-margins", h.Dashboard.ProfitMargins).
		GET("/period-projections", h.Dashboard.PeriodProjections).
		GET("/active-users", h.Dashboard.ActiveUsers).
		GET("/security-incidents", h.Dashboard.SecurityIncidents)

	reports := NewDomainGroup("reports", "/reports").
		GET("/usage", h.Report.Usage).
		GET("/sales", h.Report.Sales).
		GET("/zones", h.Report.Zones).
		GET("/monthly-active-users", h.Report.MonthlyActiveUsers)

	r.Register(system).
		Register(devices).
		Register(clients).
		Register(sales).
		Register(zones).
		Register(environments).
		Register(users).
		Register(dashboard).
		Register(reports)

	r.Setup()
}
