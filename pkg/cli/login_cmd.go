package cli

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(client *Client) *cobra.Command {
	var (
		email    string
		password string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save a token to the active profile",
		Long:  "Exchange credentials for an API bearer token. The token is saved to the active profile automatically.",
		Example: `  # Sign in interactively (password is prompted)
  catalyst login --email recruiter@catalyst.com

  # The shared personas account needs a role choice
  catalyst login --email personas@catalyst.com --role recruiter`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = string(raw)
			}

			req := map[string]string{"email": email, "password": password}
			if role != "" {
				req["role"] = role
			}
			var resp struct {
				Token string `json:"token"`
				Role  string `json:"role"`
			}
			if err := client.DoJSON("POST", "/auth/token", nil, req, &resp); err != nil {
				return err
			}

			if err := saveTokenToActiveProfile(resp.Token, client.BaseURL); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{
					"role": resp.Role, "config": ConfigPath(),
				})
			}
			fmt.Fprintf(os.Stdout, "Signed in as %s (%s). Token saved to %s\n", email, resp.Role, ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&role, "role", "", "Persona role for the shared personas account")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
