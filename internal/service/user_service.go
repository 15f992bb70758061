package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"usuarios-api/internal/cache"
	apierrors "usuarios-api/internal/errors"
	"usuarios-api/internal/model"
	"usuarios-api/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes the five domain operations over usuários. Store-level
// errors are classified into the domain taxonomy here so handlers only deal
// with apierrors sentinels.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, nome, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, nome, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache. A nil cache
// disables caching without changing behavior.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("usuario:%d", id)
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}

	if payload, err := json.Marshal(user); err == nil {
		s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, nome, email string) (*model.User, error) {
	if err := validate(nome, email); err != nil {
		return nil, err
	}
	user := &model.User{Nome: nome, Email: email}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, nome, email string) (*model.User, error) {
	if err := validate(nome, email); err != nil {
		return nil, err
	}
	user, err := s.repo.Update(ctx, id, nome, email)
	if err != nil {
		return nil, classify(err)
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// validate runs before any store interaction.
func validate(nome, email string) error {
	if strings.TrimSpace(nome) == "" || strings.TrimSpace(email) == "" {
		return apierrors.ErrMissingFields
	}
	return nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierrors.ErrUserNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierrors.ErrEmailTaken
	default:
		return err
	}
}
