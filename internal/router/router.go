package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateWalk(c *ginext.Context)
	PublishWalk(c *ginext.Context)
	GetWalk(c *ginext.Context)
	ListWalks(c *ginext.Context)
	ResetSeats(c *ginext.Context)
	Reconcile(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	ConfirmReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	IssueInvitations(c *ginext.Context)
	RedeemInvitation(c *ginext.Context)
	ExpireInvitation(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public booking surface
		api.GET("/walks", h.ListWalks)
		api.GET("/walks/:id", h.GetWalk)
		api.POST("/walks/:id/reservations", h.CreateReservation)
		api.POST("/invitations/redeem", h.RedeemInvitation)

		// Gateway webhook (signature-verified, not token-gated)
		api.POST("/webhooks/payment", h.PaymentWebhook)

		// Operator console
		admin := api.Group("/admin", adminAuth)
		{
			admin.POST("/walks", h.CreateWalk)
			admin.POST("/walks/:id/publish", h.PublishWalk)
			admin.POST("/walks/:id/reset-seats", h.ResetSeats)
			admin.POST("/walks/:id/invitations", h.IssueInvitations)
			admin.POST("/reservations/:id/confirm", h.ConfirmReservation)
			admin.POST("/reservations/:id/cancel", h.CancelReservation)
			admin.POST("/invitations/:id/expire", h.ExpireInvitation)
			admin.POST("/reconcile", h.Reconcile)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
