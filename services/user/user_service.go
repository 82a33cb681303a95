package userservice

import (
	"context"
	"time"

	middlewareprovider "assettag/providers/middlewareProvider"
	"assettag/utils"

	"assettag/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type UserService interface {
	Login(ctx context.Context, req LoginReq) (LoginRes, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
	RegisterUser(ctx context.Context, req RegisterUserReq, actorRole models.Role) (uuid.UUID, error)
	EnsureDefaultAdmin(ctx context.Context, password string) error
}

type userService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Login(ctx context.Context, req LoginReq) (LoginRes, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return LoginRes{}, models.ErrInvalidCredentials
		}
		return LoginRes{}, err
	}
	if !user.IsActive {
		return LoginRes{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return LoginRes{}, models.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		return LoginRes{}, err
	}

	token, err := middlewareprovider.GenerateJWT(user.ID.String(), user.Username, user.Role)
	if err != nil {
		return LoginRes{}, err
	}

	utils.Logger.Info("user logged in", zap.String("username", user.Username), zap.String("unit", user.Unit))

	return LoginRes{
		Token: token,
		User: LoginUserRes{
			Username:   user.Username,
			Name:       user.Name,
			Unit:       user.Unit,
			Role:       user.Role,
			FirstLogin: user.FirstLogin,
		},
	}, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	return s.repo.UpdatePassword(ctx, userID, string(hashed))
}

func (s *userService) RegisterUser(ctx context.Context, req RegisterUserReq, actorRole models.Role) (uuid.UUID, error) {
	if actorRole != models.AdminRole {
		return uuid.Nil, models.ErrAdminOnly
	}

	role := req.Role
	if role == "" {
		role = models.TechnicianRole
	}
	if !models.IsValidRole(role) {
		return uuid.Nil, errors.Wrapf(models.ErrValidation, "unknown role %q", req.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to hash password")
	}

	return s.repo.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		Name:         req.Name,
		Unit:         req.Unit,
		Role:         role,
		FirstLogin:   true,
		IsActive:     true,
	})
}

// EnsureDefaultAdmin seeds the admin account on first boot.
func (s *userService) EnsureDefaultAdmin(ctx context.Context, password string) error {
	_, err := s.repo.GetUserByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	_, err = s.repo.CreateUser(ctx, models.User{
		Username:     "admin",
		PasswordHash: string(hashed),
		Name:         "System Administrator",
		Unit:         "ALL",
		Role:         models.AdminRole,
		FirstLogin:   true,
		IsActive:     true,
	})
	if err != nil {
		return err
	}
	utils.Logger.Info("default admin created")
	return nil
}
