package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/jnun/contactcmd-sub001/config"
	"github.com/jnun/contactcmd-sub001/provider"
	"github.com/jnun/contactcmd-sub001/session"
	"github.com/jnun/contactcmd-sub001/storage"
	"github.com/jnun/contactcmd-sub001/tools"
	"github.com/jnun/contactcmd-sub001/ui"
)

const Version = "v0.01.00"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := config.GetDefaultDataDir()
	if err := config.EnsureDir(dataDir); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	config.InitDebugLog(dataDir)

	if !cfg.IsConfigured() {
		fmt.Println("AI chat is not configured.")
		fmt.Println("Set CONTACTCMD_AI_PROVIDER to remote, local, or anthropic,")
		fmt.Println("plus CONTACTCMD_AI_API_KEY (remote/anthropic) or")
		fmt.Println("CONTACTCMD_AI_LOCAL_MODEL (local), or edit " + config.GetSettingsFilePath())
		return nil
	}

	registry := provider.NewLocalModelRegistry()
	p, err := provider.NewProvider(cfg.ProviderConfig(registry))
	if err != nil {
		return err
	}
	config.Debugf("provider %s ready=%v", p.Name(), p.Ready())

	auditLog, err := storage.OpenSuggestionLog(dataDir)
	if err != nil {
		return err
	}
	defer auditLog.Close()

	sess := session.New(p, cfg.MaxIterations)
	sessionID := uuid.NewString()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("contactcmd chat %s (%s)\n", Version, p.Name())
	fmt.Println("Type a request, /clear to reset, /quit to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/clear":
			sess.ClearHistory()
			fmt.Println("History cleared.")
			continue
		}

		result, err := sess.Chat(ctx, line)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Println(ui.RenderError(err))
			config.Debugf("chat failed: %v (transcript %d turns)", err, len(sess.Transcript()))
			continue
		}

		if result.Reply != "" {
			fmt.Println(ui.RenderReply(result.Reply, terminalWidth()))
		}

		for _, suggestion := range result.Suggestions {
			if err := handleSuggestion(auditLog, sessionID, suggestion); err != nil {
				fmt.Println(ui.RenderError(err))
			}
		}
	}
}

// handleSuggestion prompts for a decision on one command and records the
// outcome. Actually executing accepted commands belongs to the contact
// CLI, which runs outside this chat surface.
func handleSuggestion(auditLog *storage.SuggestionLog, sessionID string, suggestion tools.Result) error {
	feedback, err := ui.PromptFeedback(suggestion.Command, suggestion.Explanation)
	if err != nil {
		return err
	}

	if _, err := auditLog.Record(storage.SuggestionRecord{
		SessionID:    sessionID,
		Command:      suggestion.Command,
		Explanation:  suggestion.Explanation,
		Decision:     string(feedback.Action),
		FinalCommand: feedback.Final(),
	}); err != nil {
		return err
	}

	if final := feedback.Final(); final != "" {
		fmt.Println(ui.RenderCommand(final, "queued for contactcmd"))
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
