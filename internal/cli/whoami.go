package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user.",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if !current.session.Valid() {
		return errors.New("no active session; run `joko login` first")
	}

	ctx := cmd.Context()
	id, err := current.resolveUserID(ctx)
	if err != nil {
		return err
	}

	info, err := current.session.FetchUserInfo(ctx, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "user id: %d\n", info.UserID)
	fmt.Fprintf(out, "era:     %s\n", info.Era)
	fmt.Fprintf(out, "job:     %s\n", info.Job)
	fmt.Fprintf(out, "rank:    %s\n", info.Rank)
	fmt.Fprintf(out, "coin:    %d\n", info.Coin)
	return nil
}
