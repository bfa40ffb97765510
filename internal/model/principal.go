package model

import "time"

// Principal is the verified identity carried by a bearer token:
// one user acting within one organization.
type Principal struct {
	UserID         int64
	OrganizationID int64
	Role           MembershipRole
	TokenID        string
	ExpiresAt      time.Time
}
