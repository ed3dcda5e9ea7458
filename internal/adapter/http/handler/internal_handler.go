package handler

import (
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/http/dto"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InternalHandler serves the service-to-service surface consumed by the
// transaction orchestrator. Denials come back as 200 responses with a
// decision body, not errors; only malformed input or missing wallets fail.
type InternalHandler struct {
	balanceSvc ports.BalanceService
	policySvc  ports.PolicyService
	walletSvc  ports.WalletService
}

// NewInternalHandler creates a new InternalHandler.
func NewInternalHandler(balanceSvc ports.BalanceService, policySvc ports.PolicyService, walletSvc ports.WalletService) *InternalHandler {
	return &InternalHandler{
		balanceSvc: balanceSvc,
		policySvc:  policySvc,
		walletSvc:  walletSvc,
	}
}

// ValidateBalance handles POST /internal/balance/validate.
func (h *InternalHandler) ValidateBalance(c *gin.Context) {
	var req dto.BalanceValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a UUID"))
		return
	}
	decision, err := h.balanceSvc.Validate(c.Request.Context(), walletID, req.Amount, domain.Action(req.Action))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, decision)
}

// UpdateBalance handles POST /internal/balance/update.
func (h *InternalHandler) UpdateBalance(c *gin.Context) {
	var req dto.BalanceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a UUID"))
		return
	}
	update := ports.BalanceUpdateRequest{
		WalletID:    walletID,
		Delta:       req.Delta,
		ReferenceID: req.ReferenceID,
		Reason:      req.Reason,
	}
	if req.ActorUserID != "" {
		actorID, err := uuid.Parse(req.ActorUserID)
		if err != nil {
			response.Error(c, apperror.Validation("actor_user_id must be a UUID"))
			return
		}
		update.ActorUserID = actorID
	}

	result, err := h.balanceSvc.Update(c.Request.Context(), update)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ValidateRole handles POST /internal/roles/validate.
func (h *InternalHandler) ValidateRole(c *gin.Context) {
	var req dto.RoleValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.Validation("wallet_id must be a UUID"))
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("user_id must be a UUID"))
		return
	}

	decision, err := h.policySvc.ValidateRole(c.Request.Context(), ports.RoleValidateRequest{
		WalletID:     walletID,
		UserID:       userID,
		Action:       domain.Action(req.Action),
		Amount:       req.Amount,
		TransferType: req.TransferType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, decision)
}

// GetDefaultWallet handles GET /internal/users/:id/default-wallet.
func (h *InternalHandler) GetDefaultWallet(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("user id must be a UUID"))
		return
	}

	summary, err := h.walletSvc.GetDefaultWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToDefaultWalletResponse(summary))
}
