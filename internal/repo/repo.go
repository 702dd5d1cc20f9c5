package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/cart_service/internal/models"
)

var (
	ErrNotFound  = errors.New("cart item not found")
	ErrDuplicate = errors.New("cart item already exists")
)

type CartRepository interface {
	FindByUserAndProduct(ctx context.Context, userID, productID int64) (*models.CartItem, error)
	Insert(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	DeleteByUserAndProduct(ctx context.Context, userID, productID int64) error
	DeleteAllByUser(ctx context.Context, userID int64) (int64, error)
}

type GormRepo struct {
	DB *gorm.DB
}

var _ CartRepository = (*GormRepo)(nil)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.CartItem{})
}
