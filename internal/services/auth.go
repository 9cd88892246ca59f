package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/learnify-backend/internal/data/repos"
	types "github.com/yungbote/learnify-backend/internal/domain"
	"github.com/yungbote/learnify-backend/internal/platform/apierr"
	"github.com/yungbote/learnify-backend/internal/platform/logger"
)

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the token payload returned by register and login.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	FullName    string `json:"full_name"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	// ResolveActor verifies a bearer token and loads the live user row behind it.
	ResolveActor(ctx context.Context, token string) (*types.Actor, error)
}

type authService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	tokens   TokenService
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, tokens TokenService) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:       db,
		log:      serviceLog,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (as *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = types.RoleStudent
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		Email:          in.Email,
		HashedPassword: string(hashed),
		FullName:       in.FullName,
		Role:           in.Role,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := as.userRepo.EmailExists(ctx, tx, user.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return apierr.Conflict("email_taken", "Email already registered")
		}
		if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	as.log.Info("User registered", "user_id", user.ID, "role", user.Role)
	return as.issueFor(user)
}

func (as *authService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := strings.TrimSpace(in.Email)
	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 || users[0] == nil {
		return nil, apierr.Unauthorized("invalid_credentials", "Invalid email or password")
	}
	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, apierr.Unauthorized("invalid_credentials", "Invalid email or password")
	}
	return as.issueFor(user)
}

func (as *authService) ResolveActor(ctx context.Context, token string) (*types.Actor, error) {
	claims, err := as.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	users, err := as.userRepo.GetByEmails(ctx, nil, []string{claims.Subject})
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if len(users) == 0 || users[0] == nil {
		return nil, apierr.Unauthorized("invalid_token", "Could not validate credentials")
	}
	return types.NewActor(users[0]), nil
}

func (as *authService) issueFor(user *types.User) (*AuthResult, error) {
	tok, err := as.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: tok,
		TokenType:   "bearer",
		Role:        user.Role,
		FullName:    user.FullName,
	}, nil
}
