package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	evbus "github.com/asaskevich/EventBus"
	"github.com/spf13/cobra"

	"github.com/jokoapp/joko-go/pkg/jokosdk"
	"github.com/jokoapp/joko-go/pkg/sessionx/drivers/sqlite"
	"github.com/jokoapp/joko-go/pkg/slogx"
)

var version = "dev"

// app holds everything a command needs: the session-backed SDK, the store
// it persists to, and the bus that fires when the backend rejects a token.
type app struct {
	cfg     Config
	log     *slog.Logger
	store   *sqlite.Store
	session *jokosdk.Session
	bus     evbus.Bus
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "joko",
	Short:         "Command line client for the joko history quiz backend.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := LoadConfig()

		log := slogx.New(slogx.Config{
			Service: "joko-cli",
			Version: version,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		})

		store, err := sqlite.NewStore(cfg.SessionDB, log)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}

		bus := jokosdk.NewBus()
		_ = bus.Subscribe(jokosdk.TopicAuthenticationFailed, func() {
			fmt.Fprintln(cmd.ErrOrStderr(), "session rejected by the backend; run `joko login` to sign in again")
		})

		client := jokosdk.NewClient(cfg.BaseURL, jokosdk.WithLogger(log))
		session := jokosdk.NewSession(client, store,
			jokosdk.WithBus(bus),
			jokosdk.WithSessionLogger(log),
		)

		current = &app{cfg: cfg, log: log, store: store, session: session, bus: bus}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current != nil && current.store != nil {
			return current.store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signUpCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(itemsCmd)
}

// Execute runs the CLI. SIGINT and SIGTERM cancel the command context so
// watch loops and in-flight requests unwind cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

// resolveUserID prefers the id baked into the access token and falls back to
// asking the backend when the token never carried one.
func (a *app) resolveUserID(ctx context.Context) (int64, error) {
	if id, ok := a.session.UserID(); ok {
		return id, nil
	}
	return a.session.FetchUserID(ctx)
}
