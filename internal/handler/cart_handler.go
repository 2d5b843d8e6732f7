package handler

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 認証ミドルウェアが入れた顧客IDを取り出す（未認証なら空）
func getCustomerIDFromContext(c echo.Context) string {
	s, _ := c.Get(middleware.CtxCustomerIDKey).(string)
	return s
}

// /cartsのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type CreateCartItemRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int64  `json:"quantity"`
}

type CreateCartRequest struct {
	RegionID       string                  `json:"region_id"`
	SalesChannelID string                  `json:"sales_channel_id"`
	CountryCode    string                  `json:"country_code"`
	Context        map[string]any          `json:"context"`
	Items          []CreateCartItemRequest `json:"items"`
}

type CartEnvelope struct {
	Cart usecase.CartResponse `json:"cart"`
}

// /carts, /carts/:id を登録。認証は任意（トークンがあれば検証する）。
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/carts")
	g.Use(middleware.OptionalCustomerAuth(cfg))

	g.POST("", h.create)
	g.GET("/:id", h.get)
}

func (h *CartHandler) create(c echo.Context) error {
	var req CreateCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//明細の形式チェックは永続化より前に済ませる
	items := make([]usecase.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		if it.VariantID == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "variant_id required"})
		}
		if it.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
		}
		items = append(items, usecase.ItemInput{
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
		})
	}

	out, err := h.uc.CreateCart(c.Request().Context(), usecase.CreateCartInput{
		RegionID:       req.RegionID,
		SalesChannelID: req.SalesChannelID,
		CountryCode:    req.CountryCode,
		Context:        req.Context,
		Items:          items,
		CustomerID:     getCustomerIDFromContext(c),
		ClientIP:       c.RealIP(),
		UserAgent:      c.Request().UserAgent(),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartEnvelope{Cart: out})
}

func (h *CartHandler) get(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartEnvelope{Cart: out})
}
