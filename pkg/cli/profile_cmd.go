package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newProfileCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your engagement profile (XP, level, achievements)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var resp struct {
				Email        string `json:"email"`
				TotalXP      int64  `json:"total_xp"`
				Level        int    `json:"level"`
				LevelTitle   string `json:"level_title"`
				Achievements []struct {
					Key   string `json:"key"`
					Title string `json:"title"`
				} `json:"achievements"`
				ActionCounts map[string]int64 `json:"action_counts"`
			}
			if err := client.DoJSON("GET", "/profile", nil, nil, &resp); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, resp)
			}

			fmt.Fprintf(os.Stdout, "%s — level %d (%s), %d XP\n\n", resp.Email, resp.Level, resp.LevelTitle, resp.TotalXP)
			if len(resp.Achievements) > 0 {
				fmt.Fprintln(os.Stdout, "Achievements:")
				for _, a := range resp.Achievements {
					fmt.Fprintf(os.Stdout, "  - %s\n", a.Title)
				}
				fmt.Fprintln(os.Stdout)
			}
			rows := make([][]string, 0, len(resp.ActionCounts))
			for action, n := range resp.ActionCounts {
				rows = append(rows, []string{action, strconv.FormatInt(n, 10)})
			}
			PrintTable(os.Stdout, []string{"ACTION", "COUNT"}, rows)
			return nil
		},
	}
}
