package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/pollination-go/internal/client"
)

// NewRunCmd создаёт группу команд для работы с runs.
func NewRunCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Inspect runs and download their outputs",
	}

	cmd.AddCommand(
		newRunListCmd(clientFn, outputFn),
		newRunDownloadCmd(clientFn, outputFn),
		newRunDownloadAllCmd(clientFn, outputFn),
	)

	return cmd
}

func newRunListCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	var jobID string

	cmd := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List runs of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			runs, err := c.ListRuns(cmd.Context(), args[0], jobID)
			if err != nil {
				return err
			}

			headers := []string{"ID", "STATUS", "OUTPUTS", "DURATION"}
			rows := make([][]string, len(runs))
			for i, r := range runs {
				rows[i] = []string{
					r.ID,
					string(r.CurrentStatus()),
					strings.Join(r.OutputNames(), ","),
					r.Duration().String(),
				}
			}

			out.Print(headers, rows, runs)
			return nil
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "Job the runs belong to (required)")
	cmd.MarkFlagRequired("job-id")

	return cmd
}

func newRunDownloadCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "download PROJECT RUN_ID OUTPUT",
		Short: "Download one output of a run",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			project, runID, outputName := args[0], args[1], args[2]
			dest := filepath.Join(outDir, client.OutputFilename(runID, outputName))

			if err := c.DownloadRunOutput(cmd.Context(), project, runID, outputName, dest); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Saved %s", dest))
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", ".", "Directory to save the output to")

	return cmd
}

func newRunDownloadAllCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	var jobID string
	var outDir string

	cmd := &cobra.Command{
		Use:   "download-all PROJECT",
		Short: "Download the outputs of every run of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()
			project := args[0]

			runs, err := c.ListRuns(cmd.Context(), project, jobID)
			if err != nil {
				return err
			}

			for _, r := range runs {
				names := r.OutputNames()
				if len(names) == 0 {
					out.Error(fmt.Sprintf("run %s has no outputs, skipping", r.ID))
					continue
				}

				for _, name := range names {
					dest := filepath.Join(outDir, client.OutputFilename(r.ID, name))
					if err := c.DownloadRunOutput(cmd.Context(), project, r.ID, name, dest); err != nil {
						return err
					}
					out.Success(fmt.Sprintf("Saved %s", dest))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jobID, "job-id", "", "Job the runs belong to (required)")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory to save outputs to")
	cmd.MarkFlagRequired("job-id")

	return cmd
}
