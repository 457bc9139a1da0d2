package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bolao/internal/domain"
	"bolao/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type Wallets interface {
	CreateWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type Service struct {
	userRepo    Repo
	wallets     Wallets
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, wallets Wallets, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		wallets:     wallets,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyName          = errors.New("nome cannot be empty")
	ErrNothingToUpdate    = errors.New("no profile fields to update")
)

// ProfileUpdate carries the profile fields to change; nil fields keep their
// current value, a blank telefone or chave_pix clears the column.
type ProfileUpdate struct {
	Nome     *string
	Telefone *string
	ChavePix *string
}

// Register creates the user and an empty wallet; every account starts ready
// to receive Pix deposits.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.wallets.CreateWallet(ctx, newUser.ID)
	if err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

// GetProfile loads the profile fields of an existing user.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the provided fields to the user's profile. At least
// one field must be set, and nome can change but never become blank.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*domain.User, error) {
	if update.Nome == nil && update.Telefone == nil && update.ChavePix == nil {
		return nil, ErrNothingToUpdate
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if update.Nome != nil {
		nome := strings.TrimSpace(*update.Nome)
		if nome == "" {
			return nil, ErrEmptyName
		}
		user.Nome = nome
	}
	if update.Telefone != nil {
		telefone := strings.TrimSpace(*update.Telefone)
		if telefone == "" {
			user.Telefone = nil
		} else {
			user.Telefone = &telefone
		}
	}
	if update.ChavePix != nil {
		chavePix := strings.TrimSpace(*update.ChavePix)
		if chavePix == "" {
			user.ChavePix = nil
		} else {
			user.ChavePix = &chavePix
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		zap.L().Error("can't update profile: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("profile updated", zap.String("userID", userID.String()))
	return user, nil
}

func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID.String(), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
