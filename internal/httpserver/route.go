package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/cart_service/internal/db"
	"github.com/Skotchmaster/cart_service/internal/logging"
)

type Deps struct {
	CartHandler *CartHTTP
	DB          *gorm.DB
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.ready)

	e.POST("/addToCart", d.CartHandler.AddToCart)
	e.POST("/updateProductQuantityInCart", d.CartHandler.UpdateProductQuantity)
	e.DELETE("/emptyCart/:userId", d.CartHandler.EmptyCart)
}

func (d *Deps) ready(c echo.Context) error {
	if d.DB == nil {
		return c.NoContent(http.StatusOK)
	}
	if err := db.Ping(c.Request().Context(), d.DB); err != nil {
		logging.FromContext(c.Request().Context()).Error("readiness_error", "status", 503, "error", err)
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
