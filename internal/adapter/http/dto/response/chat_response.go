package response

import "mcbot/internal/usecase"

type ChatResponse struct {
	SessionID string         `json:"session_id"`
	Response  string         `json:"response"`
	Finalized bool           `json:"finalized"`
	Order     *OrderResponse `json:"order,omitempty"`
}

func FromChatResult(r usecase.ChatResult) ChatResponse {
	res := ChatResponse{
		SessionID: r.SessionID,
		Response:  r.Response,
		Finalized: r.Finalized,
	}
	if r.Order != nil {
		o := FromOrder(*r.Order)
		res.Order = &o
	}
	return res
}
