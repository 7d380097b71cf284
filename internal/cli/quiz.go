package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	quizCmd = &cobra.Command{
		Use:   "quiz",
		Short: "This command groups subcommands for playing quizzes.",
	}

	quizIDsCmd = &cobra.Command{
		Use:   "ids",
		Short: "List the ids of the available quizzes.",
		RunE:  runQuizIDs,
	}

	quizShowCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Show a quiz question and its options.",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuizShow,
	}

	quizSubmitAnswer int

	quizSubmitCmd = &cobra.Command{
		Use:   "submit <id>",
		Short: "Submit an answer for a quiz.",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuizSubmit,
	}
)

func init() {
	quizSubmitCmd.Flags().IntVar(&quizSubmitAnswer, "answer", 0, "Zero-based index of the chosen option")
	_ = quizSubmitCmd.MarkFlagRequired("answer")

	quizCmd.AddCommand(quizIDsCmd)
	quizCmd.AddCommand(quizShowCmd)
	quizCmd.AddCommand(quizSubmitCmd)
}

func runQuizIDs(cmd *cobra.Command, args []string) error {
	ids, err := current.session.FetchQuizIDs(cmd.Context())
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

func runQuizShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid quiz id %q", args[0])
	}

	quiz, err := current.session.FetchQuiz(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%d  %s  (%d coin)\n", quiz.QuizID, quiz.Question, quiz.Coin)
	for i, option := range quiz.Options {
		fmt.Fprintf(out, "  %d) %s\n", i, option)
	}
	return nil
}

func runQuizSubmit(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid quiz id %q", args[0])
	}

	result, err := current.session.SubmitQuiz(cmd.Context(), id, quizSubmitAnswer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Correct {
		fmt.Fprintf(out, "correct! +%d coin\n", result.CoinReward)
	} else {
		fmt.Fprintf(out, "wrong; the answer was %q\n", result.CorrectAnswer)
	}
	if result.Explanation != "" {
		fmt.Fprintln(out, result.Explanation)
	}
	return nil
}
