package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/model"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*model.User, error)
	// Login returns the bearer token, its unix expiry and the matched user
	// with the password already stripped.
	Login(ctx context.Context, input dto.LoginRequest) (string, int64, *model.User, error)
}

type authService struct {
	users      repository.UserRepository
	tokens     TokenService
	search     UserSearchService
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, tokens TokenService, search UserSearchService, bcryptCost int) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &authService{
		users:      users,
		tokens:     tokens,
		search:     search,
		bcryptCost: bcryptCost,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", apperror.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:     input.Name,
		Surname:  input.Surname,
		Nickname: input.Nickname,
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent registrations can pass the lookup above; the
		// unique index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email already registered: %w", apperror.ErrConflict)
		}
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexUser(ctx, user); err != nil {
			log.Printf("failed to index user %s: %v", user.ID, err)
		}
	}

	user.Password = ""
	return user, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginRequest) (string, int64, *model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, nil, fmt.Errorf("email is not registered: %w", apperror.ErrNotFound)
		}
		return "", 0, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return "", 0, nil, fmt.Errorf("incorrect password: %w", apperror.ErrUnauthorized)
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return "", 0, nil, err
	}

	user.Password = ""
	return token, expiresAt, user, nil
}
