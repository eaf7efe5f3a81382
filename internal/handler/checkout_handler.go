package handler

import (
	"net/http"

	"quickcart/internal/config"
	"quickcart/internal/middleware"
	"quickcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type QuoteRequest struct {
	State string `json:"state"`
}

type SubmitOrderRequest struct {
	State   string `json:"state"`
	Address string `json:"address"`
	PIN     string `json:"pin"`
	Phone   string `json:"phone"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/quote", h.quote)
	g.POST("/orders", h.submitOrder)
}

// 配送先州を変えるたびに呼ばれる金額見積もり
func (h *CheckoutHandler) quote(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.GetQuote(c.Request().Context(), userID, usecase.QuoteInput{State: req.State})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) submitOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.SubmitOrder(c.Request().Context(), userID, usecase.SubmitOrderInput{
		State:   req.State,
		Address: req.Address,
		PIN:     req.PIN,
		Phone:   req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
