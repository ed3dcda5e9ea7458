package handler

import (
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/http/middleware"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	BalanceSvc     ports.BalanceService
	PolicySvc      ports.PolicyService
	InviteSvc      ports.InviteService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc)
	inviteHandler := NewInviteHandler(deps.InviteSvc)
	internalHandler := NewInternalHandler(deps.BalanceSvc, deps.PolicySvc, deps.WalletSvc)

	requireUser := middleware.RequireUser()

	// --- Public API (user-facing, identity stamped by the gateway) ---
	v1 := r.Group("/api/v1")

	wallets := v1.Group("/wallets", requireUser)
	{
		wallets.POST("", walletHandler.CreateWallet)
		wallets.PATCH("/:id", walletHandler.UpdateWallet)
		wallets.DELETE("/:id/members", walletHandler.ClearMembers)
		wallets.POST("/:id/members/invite", inviteHandler.Invite)
	}

	invites := v1.Group("/invites")
	{
		// Inspect is reachable before login; the invitee follows the link first.
		invites.GET("/inspect", inviteHandler.Inspect)
		invites.POST("/verify-code", requireUser, inviteHandler.VerifyCode)
		invites.POST("/accept", requireUser, inviteHandler.Accept)
	}

	// --- Internal API (trusted service-to-service calls) ---
	internal := r.Group("/internal")
	{
		internal.POST("/balance/validate", internalHandler.ValidateBalance)
		internal.POST("/balance/update", internalHandler.UpdateBalance)
		internal.POST("/roles/validate", internalHandler.ValidateRole)
		internal.GET("/users/:id/default-wallet", internalHandler.GetDefaultWallet)
	}

	return r
}
