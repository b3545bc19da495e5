package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizapp/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json|->",
	Short: "Check a quiz payload and print the stored record",
	Long: `Reads a quiz submission as JSON (from a file, or stdin when the argument is "-"),
validates it and prints the resulting quiz record with generated ids.
With --edit the payload is applied as an edit of an existing quiz of the session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPayload(cmd, args[0])
		if err != nil {
			return err
		}

		sess, err := newSession(cmd)
		if err != nil {
			return err
		}

		var previousID *int64
		if cmd.Flags().Changed("edit") {
			id, _ := cmd.Flags().GetInt64("edit")
			previousID = &id
		}

		q, err := sess.Quizzes.SubmitJSON(cmd.Context(), raw, previousID)
		if err != nil {
			var verrs *quiz.ValidationErrors
			if errors.As(err, &verrs) {
				for _, f := range verrs.Fields {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f.Path, f.Message)
				}
				return fmt.Errorf("payload rejected: %d problem(s)", len(verrs.Fields))
			}
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	},
}

func init() {
	validateCmd.Flags().Int64("edit", 0, "Apply the payload as an edit of the quiz with this id")
}

func readPayload(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return raw, nil
}
