package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mcbot/internal/adapter/http/handlers/mocks"
	"mcbot/internal/adapter/persistence/memory"
	"mcbot/internal/domain/entities"
	"mcbot/internal/infrastructure/menu"
	"mcbot/internal/infrastructure/sessions"
	"mcbot/internal/usecase"
	"mcbot/internal/usecase/dialogue"
	mock_interfaces "mcbot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const welcome = "Welcome to McDonald's! What can I get you started with?"

func TestRun(t *testing.T) {
	t.Run("conversation until finalize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chat := mocks.NewMockIChatUseCase(ctrl)

		order := &entities.Order{
			ID: "o-1",
			Items: []entities.Item{
				{Name: "Big Mac Meal", Category: entities.CategoryCombo, Price: 8.99},
				{Name: "Coca-Cola", Category: entities.CategoryDrink, Size: entities.SizeMedium},
			},
			Total:     8.99,
			Finalized: true,
		}
		gomock.InOrder(
			chat.EXPECT().Handle(gomock.Any(), "", openingMessage).Return(usecase.ChatResult{SessionID: "s-1", Response: welcome}, nil),
			chat.EXPECT().Handle(gomock.Any(), "s-1", "hello").Return(usecase.ChatResult{SessionID: "s-1", Response: "Hi!"}, nil),
			chat.EXPECT().Handle(gomock.Any(), "s-1", "that's all").Return(usecase.ChatResult{SessionID: "s-1", Response: "Your order total is $8.99.", Finalized: true, Order: order}, nil),
		)

		var out bytes.Buffer
		in := strings.NewReader("hello\n\n  \nthat's all\nignored\n")
		if err := run(context.Background(), in, &out, chat); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.String()
		for _, want := range []string{"System: " + welcome, "System: Hi!", " - Big Mac Meal\n", " - Coca-Cola (medium)\n", "Total price: $8.99"} {
			if !strings.Contains(got, want) {
				t.Fatalf("expected output to contain %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("errors do not end the conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chat := mocks.NewMockIChatUseCase(ctrl)
		chat.EXPECT().Handle(gomock.Any(), "", openingMessage).Return(usecase.ChatResult{SessionID: "s-1", Response: welcome}, nil)
		chat.EXPECT().Handle(gomock.Any(), "s-1", "hi").Return(usecase.ChatResult{}, errors.New("boom"))
		chat.EXPECT().Handle(gomock.Any(), "s-1", "hi again").Return(usecase.ChatResult{SessionID: "s-1", Response: "Hello"}, nil)

		var out bytes.Buffer
		if err := run(context.Background(), strings.NewReader("hi\nhi again\n"), &out, chat); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "something went wrong: boom") {
			t.Fatalf("unexpected output:\n%s", out.String())
		}
	})

	t.Run("failing to open the session stops the cli", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		chat := mocks.NewMockIChatUseCase(ctrl)
		chat.EXPECT().Handle(gomock.Any(), "", openingMessage).Return(usecase.ChatResult{}, errors.New("store down"))

		var out bytes.Buffer
		err := run(context.Background(), strings.NewReader("a Big Mac\n"), &out, chat)
		if err == nil || !strings.Contains(err.Error(), "store down") {
			t.Fatalf("expected opening error, got %v", err)
		}
	})
}

func TestRun_FirstOrderReachesThePipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mock_interfaces.NewMockIOrderParser(ctrl)
	parser.EXPECT().Parse(gomock.Any(), "I want a Big Mac", gomock.Any()).Return(entities.ParsedOrder{
		Items:   []entities.Item{{Name: "Big Mac", Category: entities.CategoryBurger}},
		Intents: []string{entities.IntentAddItem},
	}, nil).Times(1)

	pipeline := dialogue.NewPipeline(dialogue.Dependencies{
		Parser:  parser,
		Catalog: menu.Default(),
		Orders:  memory.NewOrderRepository(),
	})
	chat := usecase.NewChatUseCase(sessions.NewStore(0), pipeline)

	var out bytes.Buffer
	if err := run(context.Background(), strings.NewReader("I want a Big Mac\n"), &out, chat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if n := strings.Count(got, welcome); n != 1 {
		t.Fatalf("expected the welcome exactly once, got %d in:\n%s", n, got)
	}
	if !strings.Contains(got, "Added: Big Mac") {
		t.Fatalf("expected the first order to be added, got:\n%s", got)
	}
}
