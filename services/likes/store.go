package likes

import (
	"context"
	"errors"
	"fmt"

	"github.com/QASIM-LOKHANDWALA/Train.ai/models"

	"gorm.io/gorm"
)

// UserStore est le magasin faisant autorité pour l'appartenance liked_models.
// Pas de jeton de concurrence optimiste: chaque sauvegarde est last-write-wins.
type UserStore interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	SaveLikedModels(ctx context.Context, user *models.User) error
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user %d: %w", id, err)
	}
	return &user, nil
}

func (s *GormUserStore) SaveLikedModels(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("liked_models", user.LikedModels).Error
}
