package interfaces

import (
	"context"
	"errors"

	"mcbot/internal/domain/entities"
)

//go:generate mockgen -source=order_parser_interface.go -destination=mocks/order_parser_interface_mock.go -package=mock_interfaces

// ErrParseFailure marks an utterance the NLU layer could not turn into a ParsedOrder.
// It is recoverable: the turn replies with an apology and leaves the session untouched.
var ErrParseFailure = errors.New("could not parse order")

// IOrderParser converts a raw utterance plus conversation history into a ParsedOrder.
type IOrderParser interface {
	Parse(ctx context.Context, message string, history []entities.Turn) (entities.ParsedOrder, error)
}
