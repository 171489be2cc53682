package request

import "encoding/json"

// OrderPaymentCreateRequest is the checkout payload for a finalized order.
//
// `mp_payload` is forwarded to Mercado Pago as-is, except transaction_amount which always
// comes from the stored order. A bare Mercado Pago payload (without the envelope) is accepted too.
type OrderPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
