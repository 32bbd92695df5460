package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/catalog-service/internal/catalog/domain"
)

// GormUserRepository implements domain.UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, "user %q", user.Email)
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "user %q", email)
	}
	return &user, nil
}

func (r *GormUserRepository) UpdatePassword(ctx context.Context, id uint, password string) error {
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("password", password).Error
	return translate(err, "update password of user %d", id)
}
