package response

import (
	"hotelhub/internal/domain/loyalty"
	"hotelhub/internal/usecase/readmodel"
)

type AuthResponse struct {
	AccessToken string                   `json:"access_token"`
	User        *readmodel.UserProfileRM `json:"user"`
}

type LoyaltyResponse struct {
	Tier         string  `json:"tier"`
	Points       int     `json:"points"`
	PointsToNext int     `json:"points_to_next"`
	NextTier     *string `json:"next_tier,omitempty"`
}

type ProfileResponse struct {
	readmodel.UserProfileRM
	Loyalty LoyaltyResponse `json:"loyalty"`
}

func FromStanding(s loyalty.Standing) LoyaltyResponse {
	resp := LoyaltyResponse{
		Tier:         s.Tier.String(),
		Points:       s.Points,
		PointsToNext: s.PointsToNext,
	}
	if s.NextTier != nil {
		next := s.NextTier.String()
		resp.NextTier = &next
	}
	return resp
}
