package dialogue

const welcomeMessage = "Welcome to McDonald's! What can I get you started with?"

// GreetingHandler welcomes a customer on the first turn of a session.
type GreetingHandler struct{}

func (h *GreetingHandler) Name() string { return "greeting" }

func (h *GreetingHandler) TryHandle(t *Turn) (*Response, error) {
	if len(t.Session.History) > 0 {
		return nil, nil
	}
	return reply(welcomeMessage)
}
