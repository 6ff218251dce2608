package cli

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

type jobItem struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Department string `json:"department"`
	Type       string `json:"type"`
	Open       bool   `json:"open"`
	PostedAt   string `json:"posted_at"`
}

type jobList struct {
	Jobs          []jobItem `json:"jobs"`
	Total         int64     `json:"total"`
	NextPageToken string    `json:"next_page_token,omitempty"`
}

func newJobsCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and manage job postings",
	}
	cmd.AddCommand(newJobsListCmd(client))
	cmd.AddCommand(newJobsGetCmd(client))
	cmd.AddCommand(newJobsCreateCmd(client))
	return cmd
}

func newJobsListCmd(client *Client) *cobra.Command {
	var (
		query      string
		location   string
		department string
		maxResults int
		pageToken  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List job postings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := url.Values{}
			if query != "" {
				q.Set("query", query)
			}
			if location != "" {
				q.Set("location", location)
			}
			if department != "" {
				q.Set("department", department)
			}
			if maxResults > 0 {
				q.Set("max_results", strconv.Itoa(maxResults))
			}
			if pageToken != "" {
				q.Set("page_token", pageToken)
			}

			var resp jobList
			if err := client.DoJSON("GET", "/jobs", q, nil, &resp); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, resp)
			}

			rows := make([][]string, 0, len(resp.Jobs))
			for _, j := range resp.Jobs {
				status := "open"
				if !j.Open {
					status = "closed"
				}
				rows = append(rows, []string{
					strconv.FormatInt(j.ID, 10), j.Title, j.Company, j.Location, j.Type, status,
				})
			}
			PrintTable(os.Stdout, []string{"ID", "TITLE", "COMPANY", "LOCATION", "TYPE", "STATUS"}, rows)
			if resp.NextPageToken != "" {
				fmt.Fprintf(os.Stdout, "\nNext page: --page-token %s\n", resp.NextPageToken)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Match against title and company")
	cmd.Flags().StringVar(&location, "location", "", "Filter by location")
	cmd.Flags().StringVar(&department, "department", "", "Filter by department")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Page size")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Page token from a previous call")
	return cmd
}

func newJobsGetCmd(client *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one job posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp map[string]any
			if err := client.DoJSON("GET", "/jobs/"+args[0], nil, nil, &resp); err != nil {
				return err
			}
			return PrintJSON(os.Stdout, resp)
		},
	}
}

func newJobsCreateCmd(client *Client) *cobra.Command {
	var (
		title       string
		company     string
		location    string
		department  string
		jobType     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a job posting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := map[string]any{
				"title": title, "company": company, "location": location,
				"department": department, "type": jobType, "description": description,
			}
			var resp map[string]any
			if err := client.DoJSON("POST", "/jobs", nil, req, &resp); err != nil {
				return err
			}
			return PrintJSON(os.Stdout, resp)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Posting title")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.Flags().StringVar(&jobType, "type", "full_time", "Employment type")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}
