package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Skotchmaster/cart_service/internal/models"
)

// SQLSTATE unique_violation
const uniqueViolation = "23505"

func (r *GormRepo) FindByUserAndProduct(ctx context.Context, userID, productID int64) (*models.CartItem, error) {
	var item models.CartItem
	// misses are expected on every add; First would log them as errors
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Limit(1).
		Find(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *GormRepo) Insert(ctx context.Context, item *models.CartItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *GormRepo) Update(ctx context.Context, item *models.CartItem) error {
	res := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		Updates(map[string]any{
			"quantity":  item.Quantity,
			"total_mrp": item.TotalPrice,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) DeleteByUserAndProduct(ctx context.Context, userID, productID int64) error {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo) DeleteAllByUser(ctx context.Context, userID int64) (int64, error) {
	res := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
