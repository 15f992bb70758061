package repository

import (
	"context"

	"gorm.io/gorm"

	"usuarios-api/internal/model"
)

// UserRepository defines persistence operations for usuários.
//
// Unique-constraint violations surface as gorm.ErrDuplicatedKey and missing
// rows as gorm.ErrRecordNotFound; classification into the domain taxonomy
// happens one layer up, in the service.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uint, nome, email string) (*model.User, error)
	Delete(ctx context.Context, id uint) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// List returns all users ordered by id ascending. An empty table yields an
// empty slice, not an error.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by id.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user; the store assigns id and both timestamps.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update sets nome and email on the matching row and refreshes updated_at.
// The row is fetched first: MySQL reports zero affected rows for a no-op
// update, so RowsAffected alone cannot distinguish "missing" from
// "unchanged".
func (r *userRepository) Update(ctx context.Context, id uint, nome, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	user.Nome = nome
	user.Email = email
	if err := r.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the matching row and returns its last-known values.
func (r *userRepository) Delete(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// row vanished between the read and the delete
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}
