package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizapp/internal/quiz"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one quiz with its questions; the correct answer is starred",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quiz id %q", args[0])
		}

		sess, err := newSession(cmd)
		if err != nil {
			return err
		}

		q, err := sess.Quizzes.Get(id)
		if errors.Is(err, quiz.ErrQuizNotFound) {
			return fmt.Errorf("quiz %d not found", id)
		}
		if err != nil {
			return err
		}

		printQuiz(cmd.OutOrStdout(), q)
		return nil
	},
}

func printQuiz(w io.Writer, q quiz.Quiz) {
	fmt.Fprintf(w, "%s (#%d)\n", q.Title, q.ID)
	fmt.Fprintf(w, "Created on: %s\n", quiz.FormatDate(q.Created))
	if q.Description != "" {
		fmt.Fprintln(w, q.Description)
	}
	fmt.Fprintln(w, q.URL)

	for i, question := range q.Questions {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, question.Text)
		for _, a := range question.Answers {
			mark := " "
			if a.IsTrue {
				mark = "*"
			}
			fmt.Fprintf(w, "   %s %s\n", mark, a.Text)
		}
		fmt.Fprintf(w, "   correct: %s\n", question.FeedbackTrue)
		fmt.Fprintf(w, "   incorrect: %s\n", question.FeedbackFalse)
	}
}
