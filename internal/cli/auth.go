package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginAccountID string
	loginPassword  string

	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session locally.",
		Long: `
Usage: joko login --account-id <id> --password <password>

  Authenticates against the backend and stores the returned tokens in the
  local session file. Subsequent commands reuse the stored session until it
  expires or the backend rejects it.
`,
		RunE: runLogin,
	}

	signUpUsername  string
	signUpAccountID string
	signUpPassword  string

	signUpCmd = &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in.",
		RunE:  runSignUp,
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session.",
		RunE:  runLogout,
	}
)

func init() {
	loginCmd.Flags().StringVar(&loginAccountID, "account-id", "", "Account id to log in with")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("account-id")
	_ = loginCmd.MarkFlagRequired("password")

	signUpCmd.Flags().StringVar(&signUpUsername, "username", "", "Display name for the new account")
	signUpCmd.Flags().StringVar(&signUpAccountID, "account-id", "", "Account id for the new account")
	signUpCmd.Flags().StringVar(&signUpPassword, "password", "", "Password for the new account")
	_ = signUpCmd.MarkFlagRequired("username")
	_ = signUpCmd.MarkFlagRequired("account-id")
	_ = signUpCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if err := current.session.Login(cmd.Context(), loginAccountID, loginPassword); err != nil {
		return err
	}

	if id, ok := current.session.UserID(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "logged in as user %d\n", id)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "logged in")
	}
	return nil
}

func runSignUp(cmd *cobra.Command, args []string) error {
	if err := current.session.SignUp(cmd.Context(), signUpUsername, signUpAccountID, signUpPassword); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "account %q created and logged in\n", signUpAccountID)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := current.session.Logout(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "logged out")
	return nil
}
