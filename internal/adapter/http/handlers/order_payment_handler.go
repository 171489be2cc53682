package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"mcbot/internal/adapter/http/dto/response"
	"mcbot/internal/usecase"
	"mcbot/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/order_payment_usecase.go -destination=mocks/order_payment_usecase_mock.go -package=mocks

// OrderPaymentHandler handles checkout of finalized orders.
type OrderPaymentHandler struct {
	usecase  usecase.IOrderPaymentUseCase
	mockMode bool
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase, mockMode bool) *OrderPaymentHandler {
	return &OrderPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary      Pay a finalized order
// @Description  Creates a Mercado Pago payment. The amount is always the stored order total.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                             true   "Order ID"
// @Param        body      body      request.OrderPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200       {object}  response.OrderPaymentResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      401       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payments [post]
func (h *OrderPaymentHandler) CreatePayment(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] create start order_id=%s", orderID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_id=%s err=%v", orderID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.PayOrder(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// GetPayment godoc
// @Summary      Latest payment of an order
// @Tags         payments
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.OrderPaymentResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/payments [get]
func (h *OrderPaymentHandler) GetPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	latest, err := h.usecase.Latest(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(latest))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare Mercado Pago payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFinalized):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FINALIZED", "Order not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
