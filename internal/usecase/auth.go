package usecase

import (
	"context"

	"hotelhub/internal/domain/loyalty"
	"hotelhub/internal/domain/user"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/pkg/jwt"
	"hotelhub/internal/pkg/password"
	"hotelhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrEmailConflict      = errs.New("email is already registered")
	ErrUserNotFound       = errs.New("user not found")
	ErrUserInactive       = errs.New("user account is deactivated")
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AuthResult struct {
	Token string
	User  *readmodel.UserProfileRM
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, rawPassword string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.UserProfileRM, *loyalty.Standing, error)
}

type authUseCase struct {
	userRepo UserRepository
	jwtSvc   *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtSvc *jwt.Service) AuthUseCase {
	return &authUseCase{userRepo: userRepo, jwtSvc: jwtSvc}
}

// Register creates a CLIENT account. Roles are never taken from the request;
// managers and admins are promoted out of band.
func (u *authUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser, err := user.NewUser(input.Name, email, input.Phone, hash, user.RoleClient)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailConflict)
		}
		return nil, errs.Wrap(err, "failed to create user")
	}

	return u.issueToken(ctx, newUser)
}

func (u *authUseCase) Login(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	found, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	if err := password.ComparePassword(found.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !found.IsActive() {
		return nil, ErrUserInactive
	}

	return u.issueToken(ctx, found)
}

func (u *authUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*readmodel.UserProfileRM, *loyalty.Standing, error) {
	profile, err := u.userRepo.FindProfileByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, nil, errs.Wrap(err, "failed to find user profile")
	}

	standing := loyalty.StandingForPoints(int(profile.LoyaltyPoints))
	return profile, &standing, nil
}

func (u *authUseCase) issueToken(ctx context.Context, usr *user.User) (*AuthResult, error) {
	token, err := u.jwtSvc.GenerateToken(usr.ID(), usr.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	profile, err := u.userRepo.FindProfileByID(ctx, usr.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load user profile")
	}

	return &AuthResult{Token: token, User: profile}, nil
}
