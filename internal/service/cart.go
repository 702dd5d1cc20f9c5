package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/cart_service/internal/logging"
	"github.com/Skotchmaster/cart_service/internal/models"
	"github.com/Skotchmaster/cart_service/internal/repo"
	"github.com/Skotchmaster/cart_service/internal/transport"
)

var (
	ErrValidation = errors.New("validation") // 400
	ErrNotFound   = errors.New("not found")  // 404
	ErrConflict   = errors.New("conflict")   // 409
)

type CartService struct {
	Repo      repo.CartRepository
	Publisher EventPublisher
	Topic     string
}

type UpdateResult struct {
	Item    *models.CartItem
	Removed bool
}

func (s *CartService) AddItem(ctx context.Context, req transport.AddToCartRequest) (*models.CartItem, error) {
	if req.UserID == nil || req.ProductID == nil || req.Quantity == nil || req.ProductMRP == nil {
		return nil, fmt.Errorf("%w: user_id, product_id, quantity and product_mrp are required", ErrValidation)
	}
	if *req.UserID < 0 || *req.ProductID < 0 || *req.Quantity < 0 || req.ProductMRP.IsNegative() {
		return nil, fmt.Errorf("%w: numeric fields must be non-negative", ErrValidation)
	}

	if !models.ValidUnitPrice(*req.ProductMRP) {
		return nil, fmt.Errorf("%w: product_mrp must have at most 2 decimal places and be below %s", ErrValidation, models.MaxUnitPrice)
	}
	price := req.ProductMRP.Round(models.PriceScale)
	total := models.LineTotal(*req.Quantity, price)
	if !models.ValidTotalPrice(total) {
		return nil, fmt.Errorf("%w: total_mrp must be below %s", ErrValidation, models.MaxTotalPrice)
	}

	l := logging.FromContext(ctx).With("svc", "cart.add_item", "user_id", *req.UserID, "product_id", *req.ProductID)

	_, err := s.Repo.FindByUserAndProduct(ctx, *req.UserID, *req.ProductID)
	if err == nil {
		l.Warn("add_item_conflict")
		return nil, fmt.Errorf("%w: item already exists in cart", ErrConflict)
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	item := &models.CartItem{
		UserID:     *req.UserID,
		ProductID:  *req.ProductID,
		Quantity:   *req.Quantity,
		UnitPrice:  price,
		TotalPrice: total,
	}

	if err := s.Repo.Insert(ctx, item); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			l.Warn("add_item_conflict", "reason", "concurrent insert")
			return nil, fmt.Errorf("%w: item already exists in cart", ErrConflict)
		}
		return nil, fmt.Errorf("insert cart item: %w", err)
	}

	s.publish(ctx, CartEvent{
		Type:      EventItemAdded,
		UserID:    item.UserID,
		ProductID: &item.ProductID,
		Quantity:  &item.Quantity,
		TotalMRP:  &item.TotalPrice,
	})
	return item, nil
}

// UpdateQuantity sets the quantity of an existing line and reprices it with
// the stored unit price. Quantity 0 removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, req transport.UpdateQuantityRequest) (UpdateResult, error) {
	if req.UserID == nil || req.ProductID == nil || req.Quantity == nil {
		return UpdateResult{}, fmt.Errorf("%w: user_id, product_id and quantity are required", ErrValidation)
	}
	if *req.UserID < 0 || *req.ProductID < 0 || *req.Quantity < 0 {
		return UpdateResult{}, fmt.Errorf("%w: numeric fields must be non-negative", ErrValidation)
	}

	userID, productID, qty := *req.UserID, *req.ProductID, *req.Quantity

	item, err := s.Repo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UpdateResult{}, fmt.Errorf("%w: product not found in cart", ErrNotFound)
		}
		return UpdateResult{}, fmt.Errorf("find cart item: %w", err)
	}

	if qty == 0 {
		if err := s.Repo.DeleteByUserAndProduct(ctx, userID, productID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return UpdateResult{}, fmt.Errorf("%w: product not found in cart", ErrNotFound)
			}
			return UpdateResult{}, fmt.Errorf("delete cart item: %w", err)
		}

		s.publish(ctx, CartEvent{Type: EventItemRemoved, UserID: userID, ProductID: &productID})
		return UpdateResult{Item: item, Removed: true}, nil
	}

	total := models.LineTotal(qty, item.UnitPrice)
	if !models.ValidTotalPrice(total) {
		return UpdateResult{}, fmt.Errorf("%w: total_mrp must be below %s", ErrValidation, models.MaxTotalPrice)
	}
	item.Quantity = qty
	item.TotalPrice = total

	if err := s.Repo.Update(ctx, item); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UpdateResult{}, fmt.Errorf("%w: product not found in cart", ErrNotFound)
		}
		return UpdateResult{}, fmt.Errorf("update cart item: %w", err)
	}

	s.publish(ctx, CartEvent{
		Type:      EventItemUpdated,
		UserID:    userID,
		ProductID: &productID,
		Quantity:  &item.Quantity,
		TotalMRP:  &item.TotalPrice,
	})
	return UpdateResult{Item: item}, nil
}

// EmptyCart removes every line of userID in one statement. An already empty
// cart is not an error.
func (s *CartService) EmptyCart(ctx context.Context, userID int64) (int64, error) {
	if userID < 0 {
		return 0, fmt.Errorf("%w: user id must be non-negative", ErrValidation)
	}

	removed, err := s.Repo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete cart: %w", err)
	}

	s.publish(ctx, CartEvent{Type: EventCartEmptied, UserID: userID, Removed: &removed})
	return removed, nil
}
