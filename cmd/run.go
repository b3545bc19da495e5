package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizapp/internal/app"
	"github.com/abhisek/quizapp/internal/session"
)

// newSession resolves configuration and creates the process session. The
// audit log goes to stderr only when verbose is set.
func newSession(cmd *cobra.Command) (*session.Session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	sess, err := session.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	if cfg.Verbose {
		sess.SetAuditLog(cmd.ErrOrStderr())
	}
	return sess, nil
}

// runApp creates a session and launches the TUI.
func runApp(cmd *cobra.Command) error {
	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	// The TUI owns the terminal; audit lines would corrupt the alt screen.
	sess.SetAuditLog(nil)
	if err := app.Run(sess); err != nil {
		fmt.Fprintln(os.Stderr, "session", sess.ID, "ended with an error")
		return err
	}
	return nil
}
