package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/finsight/fincollect/internal/config"
	"github.com/finsight/fincollect/internal/provider"
	"github.com/finsight/fincollect/internal/runner"
	"github.com/finsight/fincollect/internal/telemetry"
	"github.com/finsight/fincollect/memory"
	"github.com/finsight/fincollect/tools"
)

func main() {
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		fmt.Println("Missing ANTHROPIC_API_KEY; export it before running.")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg.Export()

	persistPath := filepath.Join(cfg.StateDir, "conversation.json")
	persisted, err := memory.LoadConversation(persistPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "warning: failed to load persisted conversation: %v\n", err)
		}
	}

	client := provider.NewAnthropicClient()
	r := runner.New(client, systemPrompt, cfg.TokenBudget, tools.Registry())
	model := provider.Model(cfg.Model)

	// Rebuild the SDK conversation from the text-only transcript.
	conv := make([]anthropic.MessageParam, 0, len(persisted))
	for _, m := range persisted {
		if m.Role == "user" {
			conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
		} else {
			conv = append(conv, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text)))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Financial profile collection (Ctrl-C to quit)")

	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\u001b[94mYou\u001b[0m: ")
		var (
			user string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case user, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(user)))

		turnCtx := telemetry.WithTurnID(ctx, fmt.Sprintf("turn-%d", len(persisted)+1))
		telemetry.EmitInputFeatures(turnCtx, user)

		// Track assistant visible text to persist after the turn.
		var lastAssistantText string
		for {
			msg, toolResults, err := r.RunOneStep(turnCtx, model, conv)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				break
			}
			conv = append(conv, msg.ToParam())
			for _, b := range msg.Content {
				if tb, ok := b.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
					if lastAssistantText == "" {
						lastAssistantText = tb.Text
					} else {
						lastAssistantText += "\n" + tb.Text
					}
				}
			}
			if len(toolResults) == 0 {
				break
			}
			conv = append(conv, anthropic.NewUserMessage(toolResults...))
		}

		// Persist the text-only transcript; tool blocks stay transient.
		persisted = append(persisted, memory.Message{Role: "user", Text: user})
		if strings.TrimSpace(lastAssistantText) != "" {
			persisted = append(persisted, memory.Message{Role: "assistant", Text: lastAssistantText})
		}
		if err := memory.SaveConversation(persistPath, persisted); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save conversation: %v\n", err)
		}

		// A finalized profile arrives as a JSON object in assistant text.
		if captured, err := memory.CaptureStateObject(cfg.StateDir, lastAssistantText); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save financial state: %v\n", err)
		} else if captured {
			fmt.Printf("Saved financial state to %s\n", filepath.Join(cfg.StateDir, memory.StateFileName))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
	}
}
