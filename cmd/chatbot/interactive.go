package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/nishanttomar21/openai-chatbot-assistant/chat"
	"github.com/nishanttomar21/openai-chatbot-assistant/internal/log"
)

// inputKind classifies one line of user input.
type inputKind int

const (
	inputEmpty inputKind = iota
	inputExit
	inputClear
	inputMessage
)

// classifyInput trims the raw line and decides how the loop handles it.
// Command matching is case-insensitive and exact after trimming.
func classifyInput(raw string) (inputKind, string) {
	text := strings.TrimSpace(raw)
	switch strings.ToLower(text) {
	case "":
		return inputEmpty, ""
	case "exit":
		return inputExit, text
	case "clear":
		return inputClear, text
	}
	return inputMessage, text
}

// runInteractiveLoop drives the conversation until the user exits or the
// process is interrupted. Remote and persistence failures are handled
// inside each iteration; nothing that happens during an exchange terminates
// the loop.
func runInteractiveLoop(ctx context.Context, assistant *chat.Assistant) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          userStyle.Styled("\n💬 You: "),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	printBanner()

	for {
		select {
		case <-ctx.Done():
			printGoodbye()
			return nil
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			printGoodbye()
			return nil
		} else if err != nil {
			log.GetLogger().Errorf("Unexpected error in main loop: %v", err)
			fmt.Printf("\nAn error occurred: %v\n", err)
			continue
		}

		kind, text := classifyInput(line)
		switch kind {
		case inputExit:
			fmt.Println("\nThanks for chatting! Have a great trip!")
			return nil
		case inputClear:
			assistant.Reset()
			fmt.Println("Conversation history cleared!")
			continue
		case inputEmpty:
			fmt.Println("Please enter a message!")
			continue
		}

		if !runExchange(ctx, assistant, text) {
			printGoodbye()
			return nil
		}
	}
}

// runExchange performs moderation, completion, display and persistence for
// one user message. A rejected message never reaches the completion
// endpoint or the transcript. It reports false when the loop should exit
// because the exchange was interrupted mid-flight.
func runExchange(ctx context.Context, assistant *chat.Assistant, text string) bool {
	if !assistant.Screen(ctx, text) {
		fmt.Println("Sorry, your message contains inappropriate content. Please try again.")
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	fmt.Println("\nThinking...")
	reply := assistant.Respond(ctx, text)

	// Interrupted mid-completion: exit without persisting the partial
	// exchange.
	if ctx.Err() != nil {
		return false
	}

	fmt.Printf("\n%s %s\n", assistantStyle.Styled("Assistant:"), reply)
	assistant.Persist(text, reply)
	return true
}

func printGoodbye() {
	fmt.Println("\n\n Goodbye!")
}
