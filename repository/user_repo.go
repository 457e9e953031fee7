package repository

import (
	"context"

	"invoice-dashboard/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns ErrNotFound when no user has the address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Raw(
		`SELECT id, name, email, password FROM users WHERE email = ? LIMIT 1`, email,
	).Scan(&users).Error
	if err != nil {
		return nil, wrap("find user", err)
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}
