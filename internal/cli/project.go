package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/pollination-go/internal/client"
	"github.com/shaiso/pollination-go/internal/domain"
)

// NewProjectCmd создаёт группу команд для управления проектами.
func NewProjectCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectCreateCmd(clientFn, outputFn),
		newProjectShowCmd(clientFn, outputFn),
	)

	return cmd
}

func newProjectCreateCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	var description string
	var public bool

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project in the configured organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			project, err := c.CreateProject(cmd.Context(), domain.ProjectCreate{
				Name:        args[0],
				Description: description,
				Public:      public,
			})
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Project created: %s/%s", c.Org(), project.Name))
			out.Print(
				[]string{"ID", "NAME", "PUBLIC", "DESCRIPTION"},
				[][]string{{project.ID, project.Name, strconv.FormatBool(project.Public), project.Description}},
				project,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().BoolVar(&public, "public", false, "Make the project visible to everyone")

	return cmd
}

func newProjectShowCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			project, err := c.GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out.Print(
				[]string{"ID", "NAME", "PUBLIC", "DESCRIPTION", "CREATED"},
				[][]string{{project.ID, project.Name, strconv.FormatBool(project.Public), project.Description, fmtTime(project.CreatedAt)}},
				project,
			)
			return nil
		},
	}
}
