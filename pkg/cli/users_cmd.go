package cli

import (
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

type userItem struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	CreatedAt   string `json:"created_at"`
}

func newUsersCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts (administrators only)",
	}
	cmd.AddCommand(newUsersListCmd(client))
	cmd.AddCommand(newUsersGetCmd(client))
	cmd.AddCommand(newUsersDeleteCmd(client))
	return cmd
}

func newUsersListCmd(client *Client) *cobra.Command {
	var (
		maxResults int
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := url.Values{}
			if maxResults > 0 {
				q.Set("max_results", strconv.Itoa(maxResults))
			}
			if pageToken != "" {
				q.Set("page_token", pageToken)
			}

			var resp struct {
				Users         []userItem `json:"users"`
				Total         int64      `json:"total"`
				NextPageToken string     `json:"next_page_token,omitempty"`
			}
			if err := client.DoJSON("GET", "/users", q, nil, &resp); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, resp)
			}

			rows := make([][]string, 0, len(resp.Users))
			for _, u := range resp.Users {
				rows = append(rows, []string{
					strconv.FormatInt(u.ID, 10), u.Email, u.DisplayName, u.Role, u.Department,
				})
			}
			PrintTable(os.Stdout, []string{"ID", "EMAIL", "NAME", "ROLE", "DEPARTMENT"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Page size")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token from a previous call")
	return cmd
}

func newUsersGetCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <email>",
		Short: "Show one user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp map[string]any
			if err := client.DoJSON("GET", "/users/"+url.PathEscape(args[0]), nil, nil, &resp); err != nil {
				return err
			}
			return PrintJSON(os.Stdout, resp)
		},
	}
}

func newUsersDeleteCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.DoJSON("DELETE", "/users/"+args[0], nil, nil, nil)
		},
	}
}
