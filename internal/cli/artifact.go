package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiso/pollination-go/internal/client"
)

// NewArtifactCmd создаёт группу команд для работы с артефактами проекта.
func NewArtifactCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifact",
		Short: "Manage project artifacts",
	}

	cmd.AddCommand(newArtifactUploadCmd(clientFn, outputFn))

	return cmd
}

func newArtifactUploadCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "upload PROJECT FILE...",
		Short: "Upload local files to a project",
		Long: "Upload local files to a project for use in simulations. Each file is\n" +
			"registered under its base name and can be referenced by job arguments.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			project := args[0]
			for _, path := range args[1:] {
				artifact, err := c.UploadArtifact(cmd.Context(), project, path, "")
				if err != nil {
					return err
				}
				out.Success(fmt.Sprintf("Uploaded %s as %s", path, artifact.Key))
			}
			return nil
		},
	}
}
