package usecase

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/pkg/jwt"
	"hotelhub/internal/usecase/readmodel"
)

// TokenValidator resolves a bearer token to the current account state. The
// database lookup means a deactivated user is locked out immediately, not at
// token expiry.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*readmodel.AuthorizedUserRM, error)
}

type tokenValidator struct {
	jwtSvc   *jwt.Service
	userRepo UserRepository
}

func NewTokenValidator(jwtSvc *jwt.Service, userRepo UserRepository) TokenValidator {
	return &tokenValidator{jwtSvc: jwtSvc, userRepo: userRepo}
}

func (v *tokenValidator) Validate(ctx context.Context, token string) (*readmodel.AuthorizedUserRM, error) {
	claims, err := v.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	usr, err := v.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	if !usr.IsActive() {
		return nil, ErrUserInactive
	}

	return &readmodel.AuthorizedUserRM{
		ID:       usr.ID(),
		Email:    usr.Email().String(),
		Role:     usr.Role().String(),
		IsActive: usr.IsActive(),
	}, nil
}
