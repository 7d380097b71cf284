package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	userCmd = &cobra.Command{
		Use:   "user",
		Short: "This command groups subcommands for the user profile.",
	}

	userInfoCmd = &cobra.Command{
		Use:   "info",
		Short: "Show the user's profile and coin balance.",
		RunE:  runUserInfo,
	}

	userEraCmd = &cobra.Command{
		Use:   "era <era>",
		Short: "Travel to a different historical era.",
		Args:  cobra.ExactArgs(1),
		RunE:  runUserEra,
	}
)

func init() {
	userCmd.AddCommand(userInfoCmd)
	userCmd.AddCommand(userEraCmd)
}

func runUserInfo(cmd *cobra.Command, args []string) error {
	return runWhoami(cmd, args)
}

func runUserEra(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := current.resolveUserID(ctx)
	if err != nil {
		return err
	}

	change, err := current.session.ChangeEra(ctx, id, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "arrived in %s: %s (%d)\n", change.Era, change.EventName, change.EventYear)
	if change.EventDescription != "" {
		fmt.Fprintln(out, change.EventDescription)
	}
	fmt.Fprintf(out, "coin multiplier: x%.1f\n", change.Multiplier)
	return nil
}
