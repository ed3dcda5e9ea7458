package handler

import (
	"net/http"

	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/http/dto"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/http/middleware"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet command endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), ports.CreateWalletRequest{
		OwnerUserID:  userID,
		Type:         domain.WalletType(req.Type),
		Name:         req.Name,
		SetAsDefault: req.SetAsDefault,
	}, c.GetHeader(middleware.HeaderIdempotencyKey))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToWalletResponse(wallet))
}

// UpdateWallet handles PATCH /api/v1/wallets/:id.
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet id must be a UUID"))
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	update := ports.UpdateWalletRequest{
		WalletID:    walletID,
		ActorUserID: userID,
		Name:        req.Name,
	}
	if req.Status != nil {
		status := domain.WalletStatus(*req.Status)
		update.Status = &status
	}

	wallet, err := h.walletSvc.UpdateWallet(c.Request.Context(), update)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToWalletResponse(wallet))
}

// ClearMembers handles DELETE /api/v1/wallets/:id/members.
func (h *WalletHandler) ClearMembers(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	walletID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("wallet id must be a UUID"))
		return
	}

	cleared, err := h.walletSvc.ClearMembers(c.Request.Context(), walletID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClearMembersResponse{
		WalletID:       walletID.String(),
		MembersCleared: cleared,
	})
}

// HealthCheck handles GET /health, a deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
