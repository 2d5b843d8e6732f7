package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CartUsecase は /carts の業務ロジックです。
// 作成はRegionResolver＋LineItemGeneratorを使い、1トランザクションで行う。
type CartUsecase struct {
	tx        repo.TransactionManager
	carts     repo.CartRepository
	customers repo.CustomerRepository
	resolver  *RegionResolver
	generator *LineItemGenerator
	idGen     IDGenerator

	// sales_channels フィーチャーフラグ
	salesChannelsEnabled bool
}

// DI
func NewCartUsecase(
	tx repo.TransactionManager,
	carts repo.CartRepository,
	customers repo.CustomerRepository,
	resolver *RegionResolver,
	generator *LineItemGenerator,
	idGen IDGenerator,
	salesChannelsEnabled bool,
) *CartUsecase {
	return &CartUsecase{
		tx:                   tx,
		carts:                carts,
		customers:            customers,
		resolver:             resolver,
		generator:            generator,
		idGen:                idGen,
		salesChannelsEnabled: salesChannelsEnabled,
	}
}

// POST /carts の入力。CustomerIDは認証ミドルウェアから渡される（未認証なら空）。
type CreateCartInput struct {
	RegionID       string
	SalesChannelID string
	CountryCode    string
	Context        map[string]any
	Items          []ItemInput
	CustomerID     string
	ClientIP       string
	UserAgent      string
}

type ItemInput struct {
	VariantID string
	Quantity  int64
}

// OAS: CartLineItem
type CartLineItemResponse struct {
	ID        string `json:"id"`
	VariantID string `json:"variant_id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int64  `json:"quantity"`
	Total     int64  `json:"total"`
}

// OAS: CartResponse。合計はmaterialize時に計算して返す。
type CartResponse struct {
	ID              string                 `json:"id"`
	RegionID        string                 `json:"region_id"`
	CustomerID      *string                `json:"customer_id"`
	Email           *string                `json:"email"`
	SalesChannelID  *string                `json:"sales_channel_id"`
	ShippingAddress *model.Address         `json:"shipping_address,omitempty"`
	Context         map[string]any         `json:"context"`
	Items           []CartLineItemResponse `json:"items"`
	Subtotal        int64                  `json:"subtotal"`
	TaxTotal        int64                  `json:"tax_total"`
	ShippingTotal   int64                  `json:"shipping_total"`
	Total           int64                  `json:"total"`
	CreatedAt       time.Time              `json:"created_at"`
}

// CreateCart はカートを作成する。
// 地域解決→属性組み立て→（カート作成＋明細生成＋一括追加）を1トランザクション→
// コミット後に合計込みで取り直して返す。
func (u *CartUsecase) CreateCart(ctx context.Context, in CreateCartInput) (CartResponse, error) {
	//地域解決（明示指定が優先、無指定は一覧の先頭）
	region, err := u.resolver.Resolve(ctx, in.RegionID)
	if errors.Is(err, ErrNoRegionsConfigured) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "no regions configured")
	}
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "region not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// ip / user_agent を自動設定し、呼び出し元のcontextを上書きマージ（衝突は呼び出し元が勝つ）
	cartCtx := map[string]any{
		"ip":         in.ClientIP,
		"user_agent": in.UserAgent,
	}
	for k, v := range in.Context {
		cartCtx[k] = v
	}

	cart := model.Cart{
		ID:       u.idGen.NewID(),
		RegionID: region.ID,
		Context:  cartCtx,
	}
	if in.SalesChannelID != "" {
		cart.SalesChannelID = &in.SalesChannelID
	}

	//認証済み顧客はDBから取り直して紐付ける（クレームのemailは信用しない）
	if in.CustomerID != "" {
		customer, err := u.customers.FindByID(ctx, in.CustomerID)
		if err == nil {
			cart.CustomerID = &customer.ID
			cart.Email = &customer.Email
		} else if !errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	//国コードがあれば配送先住所を種まき（小文字で保存）
	if in.CountryCode != "" {
		cart.ShippingAddress = &model.Address{
			ID:          u.idGen.NewID(),
			CountryCode: strings.ToLower(in.CountryCode),
		}
	}

	//カート作成＋明細生成＋一括追加は1トランザクション。
	//途中で失敗したら全部ロールバックされ、カートだけ残ることはない。
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Carts().Create(ctx, &cart); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細はリクエスト順に生成して集めてから一括で付ける
		items := make([]model.LineItem, 0, len(in.Items))
		for _, it := range in.Items {
			li, err := u.generator.Generate(ctx, r.Variants(), GenerateLineItemInput{
				VariantID:  it.VariantID,
				Region:     region,
				Quantity:   it.Quantity,
				CustomerID: cart.CustomerID,
			})
			if err != nil {
				return err
			}
			items = append(items, li)
		}

		//フラグ有効時のみ、チャネルがその商品を扱うか検証
		if u.salesChannelsEnabled && cart.SalesChannelID != nil {
			for _, li := range items {
				ok, err := r.SalesChannels().CarriesProduct(ctx, *cart.SalesChannelID, li.ProductID)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				if !ok {
					return NewHTTPError(http.StatusBadRequest, "item not available in sales channel")
				}
			}
		}

		if err := r.LineItems().CreateBulk(ctx, cart.ID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return CartResponse{}, err
	}

	//コミット後に合計込みで取り直す
	return u.GetCart(ctx, cart.ID)
}

// GetCart は合計込みでカートを取得する。読み取りのみ。
func (u *CartUsecase) GetCart(ctx context.Context, cartID string) (CartResponse, error) {
	if cartID == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	cart, err := u.carts.FindWithRelations(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return buildCartResponse(cart), nil
}

// 明細から小計・税・送料・合計を計算してCartResponseを作る。
func buildCartResponse(cart model.Cart) CartResponse {
	respItems := make([]CartLineItemResponse, 0, len(cart.Items))
	var subtotal int64 = 0

	for _, it := range cart.Items {
		lineTotal := it.UnitPrice * it.Quantity
		respItems = append(respItems, CartLineItemResponse{
			ID:        it.ID,
			VariantID: it.VariantID,
			ProductID: it.ProductID,
			Title:     it.Title,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Total:     lineTotal,
		})
		subtotal += lineTotal
	}

	var taxRate float64 = 0
	if cart.Region != nil {
		taxRate = cart.Region.TaxRate
	}
	taxTotal := int64(math.Round(float64(subtotal) * taxRate / 100))

	//配送方法は未選択なので送料は0
	var shippingTotal int64 = 0

	return CartResponse{
		ID:              cart.ID,
		RegionID:        cart.RegionID,
		CustomerID:      cart.CustomerID,
		Email:           cart.Email,
		SalesChannelID:  cart.SalesChannelID,
		ShippingAddress: cart.ShippingAddress,
		Context:         cart.Context,
		Items:           respItems,
		Subtotal:        subtotal,
		TaxTotal:        taxTotal,
		ShippingTotal:   shippingTotal,
		Total:           subtotal + taxTotal + shippingTotal,
		CreatedAt:       cart.CreatedAt,
	}
}
