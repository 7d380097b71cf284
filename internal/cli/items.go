package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Show the user's item collection for their current job.",
	RunE:  runItems,
}

func runItems(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := current.resolveUserID(ctx)
	if err != nil {
		return err
	}

	collection, err := current.session.FetchUserItems(ctx, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s collection: %d/%d owned\n", collection.Job, collection.OwnedCount, collection.TotalCount)
	for _, item := range collection.Items {
		mark := " "
		if item.Owned {
			mark = "x"
		}
		fmt.Fprintf(out, "  [%s] %4d  %s\n", mark, item.ItemID, item.Name)
	}
	return nil
}
