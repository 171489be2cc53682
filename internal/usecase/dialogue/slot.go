package dialogue

// SlotHandler owns the turn while a combo customization is pending. It never passes.
type SlotHandler struct {
	kit *kit
}

func (h *SlotHandler) Name() string { return "slot" }

func (h *SlotHandler) TryHandle(t *Turn) (*Response, error) {
	pending := t.Session.PendingSlot
	if pending == nil {
		return nil, nil
	}

	step := h.kit.slots.Step(pending, t.Message, t.Session.Items())
	if !step.Resolved {
		return reply(step.Reply)
	}

	if step.Item != nil {
		t.Session.Order = append(t.Session.Order, step.Item)
	}
	t.Session.PendingSlot = step.Next
	return reply(step.Reply)
}
