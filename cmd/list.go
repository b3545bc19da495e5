package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizapp/internal/quiz"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the quizzes of a fresh session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd)
		if err != nil {
			return err
		}

		quizzes := sess.Quizzes.List()
		if len(quizzes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No quizzes.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tQUESTIONS\tCREATED")
		for _, q := range quizzes {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", q.ID, q.Title, len(q.Questions), quiz.FormatDate(q.Created))
		}
		return w.Flush()
	},
}
