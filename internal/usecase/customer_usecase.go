package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")

	// 競合
	ErrEmailAlreadyExists = errors.New("email already exists")

	// メールまたはパスワードが違う
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UUID等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(customerID string, now time.Time) (token string, expiresAt time.Time, err error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// CustomerUsecase は顧客の登録とログイン。
type CustomerUsecase struct {
	customers repo.CustomerRepository
	hasher    PasswordHasher
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	idGen     IDGenerator
	clock     Clock
}

// DI
func NewCustomerUsecase(
	customers repo.CustomerRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *CustomerUsecase {
	return &CustomerUsecase{
		customers: customers,
		hasher:    hasher,
		verifier:  verifier,
		issuer:    issuer,
		idGen:     idGen,
		clock:     clock,
	}
}

type RegisterCustomerInput struct {
	Email    string
	Password string
}

type RegisterCustomerOutput struct {
	Customer model.Customer `json:"customer"`
}

// 顧客登録を実行する
func (u *CustomerUsecase) Register(ctx context.Context, in RegisterCustomerInput) (RegisterCustomerOutput, error) {
	var out RegisterCustomerOutput

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !isValidEmailFormat(email) {
		return out, ErrInvalidEmailFormat
	}
	if len(in.Password) < 8 {
		return out, ErrPasswordTooShort
	}

	// email重複チェック
	_, err := u.customers.FindByEmail(ctx, email)
	if err == nil {
		return out, ErrEmailAlreadyExists
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return out, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	customer := model.Customer{
		ID:           u.idGen.NewID(),
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.customers.Create(ctx, &customer); err != nil {
		return out, err
	}

	out.Customer = customer
	return out, nil
}

type LoginCustomerInput struct {
	Email    string
	Password string
}

type LoginCustomerOutput struct {
	Customer    model.Customer `json:"customer"`
	AccessToken string         `json:"access_token"`
	ExpiresIn   int            `json:"expires_in"`
}

// ログイン処理を実行する
func (u *CustomerUsecase) Login(ctx context.Context, in LoginCustomerInput) (LoginCustomerOutput, error) {
	var out LoginCustomerOutput

	email := strings.TrimSpace(strings.ToLower(in.Email))

	customer, err := u.customers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return out, ErrInvalidCredentials
		}
		return out, err
	}

	if ok := u.verifier.Verify(in.Password, customer.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(customer.ID, now)
	if err != nil {
		return out, err
	}

	if err := u.customers.UpdateLastLogin(ctx, customer.ID, now); err != nil {
		return out, err
	}

	out.Customer = customer
	out.AccessToken = token
	out.ExpiresIn = int(expiresAt.Sub(now).Seconds())
	return out, nil
}

func isValidEmailFormat(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
