package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/nishanttomar21/openai-chatbot-assistant/chat"
	"github.com/nishanttomar21/openai-chatbot-assistant/internal/log"
	"github.com/nishanttomar21/openai-chatbot-assistant/llm"
	"github.com/nishanttomar21/openai-chatbot-assistant/transcript"
)

func main() {
	app := &cli.Command{
		Name:   "chatbot",
		Usage:  "Interactive Azure OpenAI travel assistant",
		Flags:  defineFlags(),
		Action: runCommand,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Path to a .env file with credentials",
			Value: ".env",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to an optional YAML tuning file",
		},
		&cli.StringFlag{
			Name:  "transcript",
			Usage: "Path to the conversation transcript file",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Path to the process log file",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "Enable debug logging",
		},
	}
}

func runCommand(ctx context.Context, cmd *cli.Command) error {
	config, err := loadConfig(cmd)
	if err != nil {
		printStartupFailure(err)
		return nil
	}

	if err := log.InitLogger(config.LogPath, config.Debug); err != nil {
		fmt.Printf("Failed to initialize chatbot: %v\n", err)
		return nil
	}
	logger := log.GetLogger()
	defer logger.Sync()

	client := llm.NewAzureClient(llm.ClientConfig{
		Endpoint:   config.Endpoint,
		APIKey:     config.APIKey,
		APIVersion: config.APIVersion,
		Model:      config.Model,
		Timeout:    config.Timeout,
	})
	assistant := chat.New(client, client, config.SystemPrompt, transcript.NewWriter(config.TranscriptPath), logger)

	logger.Infow("Session started",
		"session_id", uuid.NewString(),
		"model", config.Model,
		"transcript", config.TranscriptPath,
	)

	// SIGINT anywhere terminates the loop without persisting an in-flight
	// exchange.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	initColors()
	return runInteractiveLoop(ctx, assistant)
}

// printStartupFailure reports a fatal configuration problem with a
// remediation hint. Startup failures fall through to a normal exit.
func printStartupFailure(err error) {
	fmt.Printf("Failed to initialize chatbot: %v\n", err)
	fmt.Println("Please check your Azure OpenAI credentials and try again.")
}
