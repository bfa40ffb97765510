package dto

import (
	"time"

	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
)

type CreateOrganizationRequest struct {
	Name            string  `json:"name" binding:"required,max=120"`
	Slug            *string `json:"slug,omitempty" binding:"omitempty,max=48"`
	DefaultCurrency string  `json:"default_currency,omitempty" binding:"omitempty,len=3,alpha"`
}

type UpdateOrganizationRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,max=120"`
	DefaultCurrency *string `json:"default_currency,omitempty" binding:"omitempty,len=3,alpha"`
}

type SwitchOrganizationRequest struct {
	OrganizationID int64 `json:"organization_id,string" binding:"required"`
}

type OrganizationResponse struct {
	ID              int64     `json:"id,string"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToOrganizationResponse(org *model.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:              org.ID,
		Name:            org.Name,
		Slug:            org.Slug,
		DefaultCurrency: org.DefaultCurrency,
		CreatedAt:       org.CreatedAt,
		UpdatedAt:       org.UpdatedAt,
	}
}

type MembershipResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Role         string               `json:"role"`
	JoinedAt     time.Time            `json:"joined_at"`
}

func ToMembershipResponses(memberships []model.OrganizationMembership) []MembershipResponse {
	result := make([]MembershipResponse, len(memberships))
	for i := range memberships {
		result[i] = MembershipResponse{
			Organization: ToOrganizationResponse(&memberships[i].Organization),
			Role:         string(memberships[i].Role),
			JoinedAt:     memberships[i].JoinedAt,
		}
	}
	return result
}

// SwitchOrganizationResponse carries the token for the newly selected organization.
type SwitchOrganizationResponse struct {
	Token        string               `json:"token"`
	ExpiresAt    time.Time            `json:"expires_at"`
	Organization OrganizationResponse `json:"organization"`
	Role         string               `json:"role"`
}

func ToSwitchOrganizationResponse(s *service.Session) SwitchOrganizationResponse {
	return SwitchOrganizationResponse{
		Token:        s.Token,
		ExpiresAt:    s.ExpiresAt,
		Organization: ToOrganizationResponse(s.Organization),
		Role:         string(s.Role),
	}
}
