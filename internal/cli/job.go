package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/pollination-go/internal/client"
	"github.com/shaiso/pollination-go/internal/domain"
)

// NewJobCmd создаёт группу команд для управления jobs.
func NewJobCmd(clientFn func() *client.Client, outputFn func() *Output, pollFn func() client.PollOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Manage jobs",
	}

	cmd.AddCommand(
		newJobSubmitCmd(clientFn, outputFn, pollFn),
		newJobListCmd(clientFn, outputFn),
		newJobShowCmd(clientFn, outputFn),
		newJobWatchCmd(clientFn, outputFn, pollFn),
		newJobArtifactsCmd(clientFn, outputFn),
		newJobLinkCmd(clientFn, outputFn),
	)

	return cmd
}

func newJobSubmitCmd(clientFn func() *client.Client, outputFn func() *Output, pollFn func() client.PollOptions) *cobra.Command {
	var recipeRef string
	var models []string
	var inputName string
	var watch bool

	cmd := &cobra.Command{
		Use:   "submit PROJECT",
		Short: "Submit a parameterized job",
		Long: "Upload the given model files as project artifacts and submit one job\n" +
			"parameterized over them: the job gets one run per model.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()
			project := args[0]

			owner, name, tag, err := splitRecipeRef(recipeRef)
			if err != nil {
				return err
			}

			// Каждый набор аргументов заворачивается в собственный список:
			// job получает по одному run на модель.
			arguments := make([][]domain.JobArgument, 0, len(models))
			for _, path := range models {
				artifact, err := c.UploadArtifact(cmd.Context(), project, path, "")
				if err != nil {
					return err
				}
				out.Success(fmt.Sprintf("Uploaded %s as %s", path, artifact.Key))

				arguments = append(arguments, []domain.JobArgument{
					domain.ProjectFolderArgument(inputName, artifact.Key),
				})
			}

			job, err := c.CreateJob(cmd.Context(), project, domain.JobSpec{
				Source:    c.RecipeSourceURL(owner, name, tag),
				Arguments: arguments,
			})
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Job submitted: %s", job.ID))
			out.Print(
				[]string{"ID", "STATUS", "CREATED"},
				[][]string{{job.ID, string(job.CurrentStatus()), fmtTime(job.CreatedAt)}},
				job,
			)

			if !watch {
				return nil
			}

			finished, err := c.WaitForJob(cmd.Context(), project, job.ID, pollFn())
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Job finished: %s", finished.CurrentStatus()))
			return nil
		},
	}

	cmd.Flags().StringVar(&recipeRef, "recipe", "", "Recipe reference as OWNER/NAME/TAG (required)")
	cmd.Flags().StringSliceVar(&models, "model", nil, "Model file to upload and simulate (repeatable, required)")
	cmd.Flags().StringVar(&inputName, "input", "model", "Recipe input name the models are bound to")
	cmd.Flags().BoolVar(&watch, "watch", false, "Poll the job until it reaches a terminal status")
	cmd.MarkFlagRequired("recipe")
	cmd.MarkFlagRequired("model")

	return cmd
}

func newJobListCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list PROJECT",
		Short: "List jobs in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			jobs, err := c.ListJobs(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			headers := []string{"ID", "STATUS", "STARTED", "FINISHED"}
			rows := make([][]string, len(jobs))
			for i, j := range jobs {
				started, finished := "", ""
				if j.Status != nil {
					started = fmtTime(j.Status.StartedAt)
					finished = fmtTime(j.Status.FinishedAt)
				}
				rows[i] = []string{j.ID, string(j.CurrentStatus()), started, finished}
			}

			out.Print(headers, rows, jobs)
			return nil
		},
	}
}

func newJobShowCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show PROJECT JOB_ID",
		Short: "Show job details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			job, err := c.GetJob(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			source := ""
			if job.Spec != nil {
				source = job.Spec.Source
			}

			out.Print(
				[]string{"ID", "STATUS", "SOURCE", "CREATED"},
				[][]string{{job.ID, string(job.CurrentStatus()), source, fmtTime(job.CreatedAt)}},
				job,
			)
			return nil
		},
	}
}

func newJobWatchCmd(clientFn func() *client.Client, outputFn func() *Output, pollFn func() client.PollOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch PROJECT JOB_ID",
		Short: "Poll a job until it reaches a terminal status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			job, err := c.WaitForJob(cmd.Context(), args[0], args[1], pollFn())
			if err != nil {
				return err
			}

			finished := ""
			if job.Status != nil {
				finished = fmtTime(job.Status.FinishedAt)
			}

			out.Success(fmt.Sprintf("Job finished: %s", job.CurrentStatus()))
			out.Print(
				[]string{"ID", "STATUS", "FINISHED"},
				[][]string{{job.ID, string(job.CurrentStatus()), finished}},
				job,
			)
			return nil
		},
	}
}

func newJobArtifactsCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "artifacts PROJECT JOB_ID",
		Short: "List artifacts produced or consumed by a job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			artifacts, err := c.ListJobArtifacts(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			headers := []string{"NAME", "KEY", "TYPE", "SIZE"}
			rows := make([][]string, len(artifacts))
			for i, a := range artifacts {
				rows[i] = []string{a.Name, a.Key, a.FileType, strconv.FormatInt(a.Size, 10)}
			}

			out.Print(headers, rows, artifacts)
			return nil
		},
	}
}

func newJobLinkCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "link PROJECT JOB_ID PATH",
		Short: "Get a download link for a job artifact",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			link, err := c.JobArtifactDownloadLink(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			out.Print([]string{"URL"}, [][]string{{link}}, link)
			return nil
		},
	}
}
