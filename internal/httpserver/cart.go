package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/cart_service/internal/logging"
	"github.com/Skotchmaster/cart_service/internal/service"
	"github.com/Skotchmaster/cart_service/internal/transport"
)

const (
	msgInternal = "Some error occured"
	msgExists   = "Item already exists in Cart"
	msgNotFound = "Product not found in cart"
)

type CartHTTP struct {
	Svc *service.CartService
	// ConflictStatus is returned for duplicate adds, 409 unless set.
	ConflictStatus int
}

func (h *CartHTTP) conflictStatus() int {
	if h.ConflictStatus != 0 {
		return h.ConflictStatus
	}
	return http.StatusConflict
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, transport.MessageResponse{Message: msg, Status: status})
}

// validationMessage strips the sentinel prefix; the rest is written by the
// service for clients.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return message(c, http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddItem(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return message(c, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrConflict):
			status := h.conflictStatus()
			l.Warn("add_to_cart_error", "status", status, "error", err)
			return message(c, status, msgExists)
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return message(c, http.StatusInternalServerError, msgInternal)
		}
	}

	l.Info("item added to cart", "user_id", item.UserID, "product_id", item.ProductID)
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: "Item added to cart successfully",
		Status:  http.StatusOK,
		Item:    item,
	})
}

func (h *CartHTTP) UpdateProductQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	var req transport.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "reason", "invalid body", "error", err)
		return message(c, http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.UpdateQuantity(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_quantity_error", "status", 400, "error", err)
			return message(c, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_quantity_error", "status", 404, "error", err)
			return message(c, http.StatusNotFound, msgNotFound)
		default:
			l.Error("update_quantity_error", "status", 500, "error", err)
			return message(c, http.StatusInternalServerError, msgInternal)
		}
	}

	if res.Removed {
		l.Info("item removed from cart")
		return message(c, http.StatusOK, "Item removed from cart")
	}

	l.Info("item updated in cart")
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: "Item updated in cart successfully",
		Status:  http.StatusOK,
		Item:    res.Item,
	})
}

func (h *CartHTTP) EmptyCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.empty_cart")

	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		l.Warn("empty_cart_error", "status", 400, "reason", "user id is not integer", "error", err)
		return message(c, http.StatusBadRequest, "user id must be an integer")
	}

	removed, err := h.Svc.EmptyCart(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("empty_cart_error", "status", 400, "error", err)
			return message(c, http.StatusBadRequest, validationMessage(err))
		}
		l.Error("empty_cart_error", "status", 500, "error", err)
		return message(c, http.StatusInternalServerError, msgInternal)
	}

	l.Info("cart emptied", "user_id", userID, "removed", removed)
	return c.JSON(http.StatusOK, transport.EmptyCartResponse{
		Message: "Cart emptied successfully",
		Status:  http.StatusOK,
		Removed: removed,
	})
}
