package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"mcbot/internal/adapter/persistence/memory"
	"mcbot/internal/domain/entities"
	"mcbot/internal/infrastructure/config"
	"mcbot/internal/infrastructure/llm"
	"mcbot/internal/infrastructure/menu"
	"mcbot/internal/infrastructure/sessions"
	"mcbot/internal/usecase"
	"mcbot/internal/usecase/dialogue"

	_ "github.com/joho/godotenv/autoload"
)

// openingMessage opens the session so the greeting turn is spent before the customer types.
const openingMessage = "Hello"

func main() {
	cfg := config.Load()

	catalog, err := menu.Load(cfg.Menu.Path)
	if err != nil {
		log.Fatalf("Failed to load menu: %v", err)
	}
	client, err := llm.NewClient(cfg.OpenAI)
	if err != nil {
		log.Fatalf("Failed to configure the language model: %v", err)
	}

	pipeline := dialogue.NewPipeline(dialogue.Dependencies{
		Parser:   llm.NewOrderParser(client),
		Catalog:  catalog,
		Composer: llm.NewMessageComposer(client),
		Orders:   memory.NewOrderRepository(),
	})
	chat := usecase.NewChatUseCase(sessions.NewStore(0), pipeline)

	// the dialogue engine logs through the standard logger; keep the terminal for the conversation
	log.SetOutput(io.Discard)

	if err := run(context.Background(), os.Stdin, os.Stdout, chat); err != nil {
		fmt.Fprintf(os.Stderr, "cli: %v\n", err)
		os.Exit(1)
	}
}

// run drives one conversation until an order is finalized or the input ends.
func run(ctx context.Context, in io.Reader, out io.Writer, chat usecase.IChatUseCase) error {
	opening, err := chat.Handle(ctx, "", openingMessage)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	sessionID := opening.SessionID
	fmt.Fprintf(out, "System: %s\n", opening.Response)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		result, err := chat.Handle(ctx, sessionID, message)
		if err != nil {
			fmt.Fprintf(out, "Sorry, something went wrong: %v\n", err)
			continue
		}
		sessionID = result.SessionID
		fmt.Fprintf(out, "System: %s\n", result.Response)

		if result.Finalized && result.Order != nil {
			printSummary(out, *result.Order)
			return nil
		}
	}
}

func printSummary(out io.Writer, order entities.Order) {
	fmt.Fprintln(out, "\nYour order summary:")
	for _, it := range order.Items {
		if it.Size != "" {
			fmt.Fprintf(out, " - %s (%s)\n", it.Name, it.Size)
			continue
		}
		fmt.Fprintf(out, " - %s\n", it.Name)
	}
	fmt.Fprintf(out, "\nTotal price: $%.2f\n", order.Total)
	fmt.Fprintln(out, "Thank you for your order!")
}
