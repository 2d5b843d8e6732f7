package server

import (
	"storefront/internal/config"
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立ててルートを登録する。
func New(
	cfg config.Config,
	cartH *handler.CartHandler,
	regionH *handler.RegionHandler,
	customerH *handler.CustomerHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	//アクセスログとpanic回復
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	cartH.RegisterRoutes(e, cfg)
	regionH.RegisterRoutes(e)
	customerH.RegisterRoutes(e)

	return e
}

// Start はサーバーを起動する。
func Start(e *echo.Echo, cfg config.Config) error {
	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
