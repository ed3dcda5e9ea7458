package domain

import "time"

// WalletTypePolicy is immutable reference data governing a wallet type.
type WalletTypePolicy struct {
	Type                WalletType   `json:"type"`
	MaxMembers          int          `json:"max_members"`
	DefaultDailyCap     int64        `json:"default_daily_cap"`
	DefaultMonthlyCap   int64        `json:"default_monthly_cap"`
	AllowExternalCredit bool         `json:"allow_external_credit"`
	AllowedDebitRoles   []MemberRole `json:"allowed_debit_roles"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// DebitRoleAllowed reports whether role may debit under this policy.
func (p *WalletTypePolicy) DebitRoleAllowed(role MemberRole) bool {
	for _, r := range p.AllowedDebitRoles {
		if r == role {
			return true
		}
	}
	return false
}
