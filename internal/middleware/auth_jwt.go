package middleware

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxCustomerIDKey = "customer_id" // string
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// bearerAuth用のJWT検証ミドルウェア。トークン必須。
func CustomerAuth(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			customerID, ok, err := customerIDFromHeader(c, cfg)
			if err != nil || !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxCustomerIDKey, customerID)
			return next(c)
		}
	}
}

// トークン任意のミドルウェア。
// ヘッダが無ければ匿名のまま通し、付いているのに不正なら401にする。
func OptionalCustomerAuth(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}

			customerID, ok, err := customerIDFromHeader(c, cfg)
			if err != nil || !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxCustomerIDKey, customerID)
			return next(c)
		}
	}
}

// AuthorizationヘッダのBearerトークンを検証して顧客IDを取り出す
func customerIDFromHeader(c echo.Context, cfg config.Config) (string, bool, error) {
	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return "", false, nil
	}

	//Bearer形式か確認してtokenを抜く
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false, errors.New("invalid authorization header")
	}
	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return "", false, errors.New("empty token")
	}

	//JWTをパースして検証する
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", false, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false, errors.New("invalid claims")
	}

	customerID, ok := claims["sub"].(string)
	if !ok || customerID == "" {
		return "", false, errors.New("invalid sub")
	}

	return customerID, true, nil
}
