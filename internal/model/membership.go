package model

import "time"

type MembershipRole string

const (
	MembershipRoleOwner  MembershipRole = "OWNER"
	MembershipRoleAdmin  MembershipRole = "ADMIN"
	MembershipRoleMember MembershipRole = "MEMBER"
)

func (r MembershipRole) Valid() bool {
	switch r {
	case MembershipRoleOwner, MembershipRoleAdmin, MembershipRoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may change organization settings.
func (r MembershipRole) CanManage() bool {
	return r == MembershipRoleOwner || r == MembershipRoleAdmin
}

type Membership struct {
	UserID         int64          `json:"user_id"`
	OrganizationID int64          `json:"organization_id"`
	Role           MembershipRole `json:"role"`
	CreatedAt      time.Time      `json:"created_at"`
}

// OrganizationMembership is a membership joined with the organization it grants access to.
type OrganizationMembership struct {
	Organization Organization   `json:"organization"`
	Role         MembershipRole `json:"role"`
	JoinedAt     time.Time      `json:"joined_at"`
}
