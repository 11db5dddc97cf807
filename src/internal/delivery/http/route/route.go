package route

import (
	"wallet-service/src/internal/delivery/http"
	"wallet-service/src/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type RouteConfig struct {
	App                    *fiber.App
	AuthController         *http.AuthController
	WalletController       *http.WalletController
	AdminController        *http.AdminController
	NotificationController *http.NotificationController
	AuthMiddleware         fiber.Handler
	Metrics                *metrics.Collector
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	if c.Metrics != nil {
		c.App.Get("/metrics", adaptor.HTTPHandler(c.Metrics.Handler()))
	}

	c.App.Post("/auth/v1/login", c.AuthController.Login)
	c.App.Get("/auth/v1/session", c.AuthController.Session)

	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Post("/auth/v1/logout", c.AuthController.Logout)

	c.App.Get("/wallet/v1", c.WalletController.GetWallet)
	c.App.Get("/wallet/v1/transactions", c.WalletController.GetTransactions)
	c.App.Post("/wallet/v1/withdrawals", c.WalletController.Withdraw)
	c.App.Get("/wallet/v1/withdrawals/pending", c.WalletController.GetPendingWithdrawals)

	c.App.Get("/notifications/v1", c.NotificationController.List)
	c.App.Patch("/notifications/v1/read-all", c.NotificationController.MarkAllRead)
	c.App.Patch("/notifications/v1/:id/read", c.NotificationController.MarkRead)
	c.App.Delete("/notifications/v1/:id", c.NotificationController.Delete)
	c.App.Delete("/notifications/v1", c.NotificationController.ClearAll)

	c.App.Post("/admin/v1/credit", c.AdminController.Credit)
	c.App.Post("/admin/v1/debit", c.AdminController.Debit)
	c.App.Post("/admin/v1/reset", c.AdminController.Reset)
	c.App.Post("/admin/v1/withdrawals/reverse-last", c.AdminController.ReverseLastWithdrawal)
	c.App.Patch("/admin/v1/transactions/:id", c.AdminController.UpdateTransaction)
	c.App.Put("/admin/v1/withdrawal-defaults", c.AdminController.SaveWithdrawalDefaults)
	c.App.Put("/admin/v1/trading-id", c.AdminController.UpdateTradingID)
	c.App.Put("/admin/v1/profile", c.AdminController.UpdateProfile)
	c.App.Get("/admin/v1/export", c.AdminController.ExportData)
	c.App.Delete("/admin/v1/data", c.AdminController.ClearAllData)
}
