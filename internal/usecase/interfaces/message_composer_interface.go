package interfaces

import (
	"context"

	"mcbot/internal/domain/entities"
)

//go:generate mockgen -source=message_composer_interface.go -destination=mocks/message_composer_interface_mock.go -package=mock_interfaces

// IMessageComposer turns an instruction plus history into a natural-language reply.
type IMessageComposer interface {
	Compose(ctx context.Context, history []entities.Turn, instruction string) (string, error)
}
