package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHash_StableForEqualValues(t *testing.T) {
	type req struct {
		OwnerUserID string `json:"owner_user_id"`
		Type        string `json:"type"`
		Name        string `json:"name"`
	}

	a, err := RequestHash(req{OwnerUserID: "u1", Type: "PERSONAL", Name: "main"})
	require.NoError(t, err)
	b, err := RequestHash(req{OwnerUserID: "u1", Type: "PERSONAL", Name: "main"})
	require.NoError(t, err)
	c, err := RequestHash(req{OwnerUserID: "u1", Type: "PERSONAL", Name: "other"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestNewEnvelope(t *testing.T) {
	wid := uuid.New()
	env, err := NewEnvelope(EventWalletCreated, 1, wid.String(), WalletCreatedPayload{
		WalletID:        wid,
		Currency:        "IDR",
		Status:          WalletStatusActive,
		Type:            WalletTypePersonal,
		BalanceSnapshot: decimal.Zero,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, EventWalletCreated, env.EventType)
	assert.Equal(t, 1, env.Version)
	assert.Equal(t, wid.String(), env.AggregateID)

	var payload WalletCreatedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, wid, payload.WalletID)
}

func TestTopicFor(t *testing.T) {
	assert.Equal(t, TopicWalletCreated, TopicFor(EventWalletCreated))
	assert.Equal(t, TopicMembersCleared, TopicFor(EventWalletMembersCleared))
	assert.Empty(t, TopicFor("SomethingElse"))
}

func TestInviteSessionKey(t *testing.T) {
	wid := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	uid := uuid.MustParse("99999999-8888-7777-6666-555555555555")

	assert.Equal(t,
		"invite:11111111-2222-3333-4444-555555555555:-:abc",
		InviteSessionKey(wid, nil, "abc"))
	assert.Equal(t,
		"invite:11111111-2222-3333-4444-555555555555:99999999-8888-7777-6666-555555555555:abc",
		InviteSessionKey(wid, &uid, "abc"))
}

func TestHashInviteCode_AndMatch(t *testing.T) {
	s := &InviteSession{CodeHash: HashInviteCode("482913", "secret")}

	assert.True(t, s.CodeMatches("482913", "secret"))
	assert.False(t, s.CodeMatches("482914", "secret"))
	assert.False(t, s.CodeMatches("482913", "other-secret"))
}

func TestAttemptsExhausted(t *testing.T) {
	s := &InviteSession{Attempts: 4, MaxAttempts: 5}
	assert.False(t, s.AttemptsExhausted())
	s.Attempts = 5
	assert.True(t, s.AttemptsExhausted())
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "+62812****78", MaskPhone("+6281234345678"))
	assert.Equal(t, "+628", MaskPhone("+628"))
}

func TestDebitRoleAllowed(t *testing.T) {
	p := &WalletTypePolicy{AllowedDebitRoles: []MemberRole{RoleOwner, RoleAdmin}}
	assert.True(t, p.DebitRoleAllowed(RoleOwner))
	assert.False(t, p.DebitRoleAllowed(RoleViewer))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidWalletStatus(WalletStatusActive))
	assert.False(t, ValidWalletStatus(WalletStatus("UNKNOWN")))
	assert.True(t, ValidWalletType(WalletTypeShared))
	assert.False(t, ValidWalletType(WalletType("JOINT")))
	assert.True(t, ValidMemberRole(RoleViewer))
	assert.False(t, ValidMemberRole(MemberRole("ROOT")))
	assert.True(t, ValidAction(ActionCredit))
	assert.False(t, ValidAction(Action("TRANSFER")))
}
