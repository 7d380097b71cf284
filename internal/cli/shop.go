package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jokoapp/joko-go/pkg/flightx"
	"github.com/jokoapp/joko-go/pkg/jokosdk"
)

var (
	shopWatch bool

	shopCmd = &cobra.Command{
		Use:   "shop",
		Short: "List the shop catalog.",
		Long: `
Usage: joko shop [options]

  Lists every shop item grouped by rank tier.

  With --watch the catalog is re-fetched on an interval (JOKO_WATCH_INTERVAL,
  default 2s). Overlapping fetches are coalesced: a newer refresh supersedes
  a slower one, and rapid re-triggers inside the interval are dropped.
`,
		RunE: runShop,
	}
)

func init() {
	shopCmd.Flags().BoolVar(&shopWatch, "watch", false, "Keep refreshing the catalog until interrupted")
}

func runShop(cmd *cobra.Command, args []string) error {
	if shopWatch {
		return watchShop(cmd)
	}

	groups, err := current.session.FetchAllItems(cmd.Context())
	if err != nil {
		return err
	}

	printShop(cmd.OutOrStdout(), groups)
	return nil
}

func watchShop(cmd *cobra.Command) error {
	ctx := cmd.Context()

	ctrl := flightx.New[[]jokosdk.RankItemGroup](flightx.WithLogger(current.log))
	fetch := func(ctx context.Context) ([]jokosdk.RankItemGroup, error) {
		return current.session.FetchAllItems(ctx)
	}

	ticker := time.NewTicker(current.cfg.WatchInterval)
	defer ticker.Stop()

	ctrl.Trigger(ctx, "shop:all", fetch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case res := <-ctrl.Results():
			if res.Err != nil {
				if errors.Is(res.Err, jokosdk.ErrAuthenticationFailed) {
					return res.Err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "refresh failed: %v\n", res.Err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n", time.Now().Format(time.TimeOnly))
			printShop(cmd.OutOrStdout(), res.Value)
		case <-ticker.C:
			ctrl.Trigger(ctx, "shop:all", fetch)
		}
	}
}

func printShop(out io.Writer, groups []jokosdk.RankItemGroup) {
	for _, group := range groups {
		fmt.Fprintf(out, "[%s]\n", group.Rank)
		for _, item := range group.Items {
			owned := ""
			if item.UserItemID != nil {
				owned = "  (owned)"
			}
			fmt.Fprintf(out, "  %4d  %-24s %6d coin%s\n", item.ItemID, item.Name, item.Price, owned)
		}
	}
}
