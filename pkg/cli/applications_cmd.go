package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

type applicationItem struct {
	ID             int64  `json:"id"`
	JobID          int64  `json:"job_id"`
	CandidateEmail string `json:"candidate_email"`
	CandidateName  string `json:"candidate_name"`
	Stage          string `json:"stage"`
	SubmittedAt    string `json:"submitted_at"`
}

func newApplicationsCmd(client *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Track job applications",
	}
	cmd.AddCommand(newApplicationsListCmd(client))
	cmd.AddCommand(newApplicationsSubmitCmd(client))
	cmd.AddCommand(newApplicationsAdvanceCmd(client))
	return cmd
}

func newApplicationsListCmd(client *Client) *cobra.Command {
	var jobID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your applications, or a posting's pipeline with --job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := "/applications"
			if jobID > 0 {
				path = "/jobs/" + strconv.FormatInt(jobID, 10) + "/applications"
			}
			var resp struct {
				Applications []applicationItem `json:"applications"`
				Total        int64             `json:"total,omitempty"`
			}
			if err := client.DoJSON("GET", path, nil, nil, &resp); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, resp)
			}

			rows := make([][]string, 0, len(resp.Applications))
			for _, a := range resp.Applications {
				rows = append(rows, []string{
					strconv.FormatInt(a.ID, 10), strconv.FormatInt(a.JobID, 10),
					a.CandidateName, a.CandidateEmail, a.Stage,
				})
			}
			PrintTable(os.Stdout, []string{"ID", "JOB", "CANDIDATE", "EMAIL", "STAGE"}, rows)
			return nil
		},
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "Show the pipeline for this posting (staff only)")
	return cmd
}

func newApplicationsSubmitCmd(client *Client) *cobra.Command {
	var (
		jobID       int64
		name        string
		resumeURL   string
		coverLetter string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Apply to a job posting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := map[string]any{
				"job_id":         jobID,
				"candidate_name": name,
				"resume_url":     resumeURL,
				"cover_letter":   coverLetter,
			}
			var resp map[string]any
			if err := client.DoJSON("POST", "/applications", nil, req, &resp); err != nil {
				return err
			}
			return PrintJSON(os.Stdout, resp)
		},
	}

	cmd.Flags().Int64Var(&jobID, "job", 0, "Posting id")
	cmd.Flags().StringVar(&name, "name", "", "Candidate display name")
	cmd.Flags().StringVar(&resumeURL, "resume-url", "", "Link to a resume")
	cmd.Flags().StringVar(&coverLetter, "cover-letter", "", "Cover letter text")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newApplicationsAdvanceCmd(client *Client) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "advance <id>",
		Short: "Move a candidate to the next pipeline stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp map[string]any
			if err := client.DoJSON("PATCH", "/applications/"+args[0], nil, map[string]string{"stage": stage}, &resp); err != nil {
				return err
			}
			return PrintJSON(os.Stdout, resp)
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Target stage")
	_ = cmd.MarkFlagRequired("stage")
	return cmd
}
