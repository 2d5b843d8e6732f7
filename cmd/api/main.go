package main

import (
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func (i *jwtIssuer) Issue(customerID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub": customerID,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .envがあれば読む
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Region{},
		&model.Country{},
		&model.Product{},
		&model.ProductVariant{},
		&model.MoneyAmount{},
		&model.SalesChannel{},
		&model.ProductSalesChannel{},
		&model.Customer{},
		&model.Address{},
		&model.Cart{},
		&model.LineItem{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	regionRepo := infraRepo.NewRegionGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 15 * time.Minute,
	}

	//Usecase生成
	resolver := usecase.NewRegionResolver(regionRepo)
	generator := usecase.NewLineItemGenerator(idGen)
	cartUC := usecase.NewCartUsecase(
		txManager,
		cartRepo,
		customerRepo,
		resolver,
		generator,
		idGen,
		cfg.SalesChannelsEnabled,
	)
	regionUC := usecase.NewRegionUsecase(regionRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo, hasher, verifier, issuer, idGen, clock)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC)
	regionH := handler.NewRegionHandler(regionUC)
	customerH := handler.NewCustomerHandler(customerUC)

	//Server起動
	e := server.New(cfg, cartH, regionH, customerH)
	if err := server.Start(e, cfg); err != nil {
		panic(err)
	}
}
