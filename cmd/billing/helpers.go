package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/radio-billing/backend/internal/domain/valueobject"
	"github.com/radio-billing/backend/internal/infra/db"
	"github.com/radio-billing/backend/internal/infra/dependency"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// session bundles the wired application for one command invocation.
type session struct {
	injector *dependency.Injector
	close    func()
}

// openSession connects to the database, applies migrations and wires the
// batch use cases with the optional Redis recorder and report sender.
func openSession() (*session, error) {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient := dependency.NewRedisClient(&cfg.Redis)
	injector := dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Redis:       redisClient,
		EmailSender: dependency.NewEmailSender(&cfg.Email),
	})

	return &session{
		injector: injector,
		close: func() {
			if redisClient != nil {
				_ = redisClient.Close()
			}
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		},
	}, nil
}

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = headerStyle.Render(h)
	}
	fmt.Fprintln(tw, strings.Join(styled, "\t"))
	return tw
}

func printItemErrors(w io.Writer, errs []valueobject.ItemError) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("%d item(s) failed:", len(errs))))
	for _, e := range errs {
		if e.Month != "" {
			fmt.Fprintf(w, "  [%s] #%d %s: %s\n", e.Kind, e.RecordID, e.Month, e.Message)
			continue
		}
		fmt.Fprintf(w, "  [%s] #%d: %s\n", e.Kind, e.RecordID, e.Message)
	}
}
