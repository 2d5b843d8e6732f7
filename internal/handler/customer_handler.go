package handler

import (
	"errors"
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /customers のHTTP
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

type RegisterCustomerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginCustomerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/customers", h.register)
	e.POST("/customers/auth", h.login)
}

func (h *CustomerHandler) register(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Register(c.Request().Context(), usecase.RegisterCustomerInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmailFormat):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email"})
		case errors.Is(err, usecase.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "password too short"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already exists"})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) login(c echo.Context) error {
	var req LoginCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginCustomerInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
