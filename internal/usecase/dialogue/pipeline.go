package dialogue

import (
	"context"
	"errors"
	"log"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
	"mcbot/internal/usecase/ordering"
)

// ParseFailureReply is sent when the NLU layer cannot read the message.
const ParseFailureReply = "Sorry, I couldn't understand your order. Could you rephrase?"

// Dependencies wires a Pipeline. Composer and Orders are optional: without a composer
// handlers reply with their deterministic text, without a repository finalized orders
// are not persisted.
type Dependencies struct {
	Parser   interfaces.IOrderParser
	Catalog  interfaces.ICatalog
	Composer interfaces.IMessageComposer
	Orders   interfaces.IOrderRepository
}

// Pipeline tries its handlers in a fixed priority order.
type Pipeline struct {
	parser    interfaces.IOrderParser
	validator *ordering.Validator
	handlers  []Handler
	fallback  *FallbackHandler
}

func NewPipeline(deps Dependencies) *Pipeline {
	pricing := ordering.NewPriceResolver(deps.Catalog)
	k := &kit{
		catalog:  deps.Catalog,
		pricing:  pricing,
		slots:    ordering.NewSlotMachine(pricing),
		composer: deps.Composer,
		orders:   deps.Orders,
	}

	return &Pipeline{
		parser:    deps.Parser,
		validator: ordering.NewValidator(deps.Catalog, pricing),
		handlers: []Handler{
			&GreetingHandler{},
			&SlotHandler{kit: k},
			&AddItemHandler{kit: k},
			&ComboHandler{kit: k},
			&AskUpsellHandler{kit: k},
			&CancelHandler{},
			&DessertHandler{kit: k},
			&FinalizeHandler{kit: k},
		},
		fallback: &FallbackHandler{kit: k},
	}
}

// Run processes one message against s. The caller must hold the session's turn lock.
//
// A parse failure is answered with ParseFailureReply and leaves s untouched. Any other
// answer is recorded in the history as a user turn followed by the system reply.
func (p *Pipeline) Run(ctx context.Context, s *entities.Session, message string) (Response, error) {
	t := &Turn{
		Ctx:       ctx,
		Session:   s,
		Message:   message,
		parser:    p.parser,
		validator: p.validator,
	}

	for _, h := range p.handlers {
		resp, err := h.TryHandle(t)
		if err != nil {
			if errors.Is(err, interfaces.ErrParseFailure) {
				return Response{Text: ParseFailureReply}, nil
			}
			log.Printf("[chat][pipeline] handler=%s failed session_id=%s err=%v", h.Name(), s.ID, err)
			return Response{}, err
		}
		if resp != nil {
			log.Printf("[chat][pipeline] handled session_id=%s handler=%s finalized=%t", s.ID, h.Name(), resp.Finalized)
			return p.commit(s, message, *resp), nil
		}
	}

	resp, err := p.fallback.TryHandle(t)
	if err != nil {
		return Response{}, err
	}
	log.Printf("[chat][pipeline] handled session_id=%s handler=%s", s.ID, p.fallback.Name())
	return p.commit(s, message, *resp), nil
}

func (p *Pipeline) commit(s *entities.Session, message string, resp Response) Response {
	s.Record(entities.RoleUser, message)
	s.Record(entities.RoleSystem, resp.Text)
	return resp
}
