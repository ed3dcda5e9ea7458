package handler

import (
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/http/dto"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/adapter/http/middleware"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/domain"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/internal/core/ports"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/apperror"
	"github.com/group-2-odp-bni/be-capstone-project-sub001/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InviteHandler handles the invitation lifecycle endpoints.
type InviteHandler struct {
	inviteSvc ports.InviteService
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(inviteSvc ports.InviteService) *InviteHandler {
	return &InviteHandler{inviteSvc: inviteSvc}
}

// Invite handles POST /api/v1/wallets/:id/members/invite.
func (h *InviteHandler) Invite(c *gin.Context) {
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

	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	invite, err := h.inviteSvc.Generate(
		c.Request.Context(),
		walletID,
		userID,
		req.Phone,
		domain.MemberRole(req.Role),
		c.GetHeader(middleware.HeaderIdempotencyKey),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, invite)
}

// Inspect handles GET /api/v1/invites/inspect. The token rides in the query
// string; no authentication is needed to preview an invite.
func (h *InviteHandler) Inspect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, apperror.Validation("token query parameter is required"))
		return
	}

	inspection, err := h.inviteSvc.Inspect(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, inspection)
}

// VerifyCode handles POST /api/v1/invites/verify-code.
func (h *InviteHandler) VerifyCode(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.inviteSvc.VerifyCode(c.Request.Context(), req.Token, req.Code, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Accept handles POST /api/v1/invites/accept.
func (h *InviteHandler) Accept(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.inviteSvc.AcceptToken(c.Request.Context(), req.Token, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
