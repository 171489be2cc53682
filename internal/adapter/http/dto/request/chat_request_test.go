package request

import "testing"

func TestChatRequest_Resolve(t *testing.T) {
	r := ChatRequest{SessionID: "  abc ", Message: "  I want a Big Mac\n"}
	if got := r.ResolveSessionID(); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := r.ResolveMessage(); got != "I want a Big Mac" {
		t.Fatalf("unexpected message: %q", got)
	}

	blank := ChatRequest{Message: "   "}
	if blank.ResolveMessage() != "" || blank.ResolveSessionID() != "" {
		t.Fatalf("expected empty values, got %+v", blank)
	}
}
