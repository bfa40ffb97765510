package dto

import (
	"time"

	"runway.app/api/internal/model"
	"runway.app/api/internal/service"
)

type SignupRequest struct {
	Name             string `json:"name" binding:"required,max=120"`
	Email            string `json:"email" binding:"required,email,max=254"`
	Password         string `json:"password" binding:"required,min=8,max=72"`
	OrganizationName string `json:"organization_name,omitempty" binding:"omitempty,max=120"`
	Currency         string `json:"currency,omitempty" binding:"omitempty,len=3,alpha"`
}

type LoginRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	OrganizationID *int64 `json:"organization_id,string,omitempty"`
}

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type SessionResponse struct {
	Token        string               `json:"token"`
	ExpiresAt    time.Time            `json:"expires_at"`
	User         UserResponse         `json:"user"`
	Organization OrganizationResponse `json:"organization"`
	Role         string               `json:"role"`
}

func ToSessionResponse(s *service.Session) SessionResponse {
	return SessionResponse{
		Token:        s.Token,
		ExpiresAt:    s.ExpiresAt,
		User:         ToUserResponse(s.User),
		Organization: ToOrganizationResponse(s.Organization),
		Role:         string(s.Role),
	}
}

type MeResponse struct {
	User         UserResponse         `json:"user"`
	Organization OrganizationResponse `json:"organization"`
	Role         string               `json:"role"`
	Memberships  []MembershipResponse `json:"memberships"`
}

func ToMeResponse(p *service.Profile) MeResponse {
	return MeResponse{
		User:         ToUserResponse(p.User),
		Organization: ToOrganizationResponse(p.Organization),
		Role:         string(p.Role),
		Memberships:  ToMembershipResponses(p.Memberships),
	}
}
