package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiso/pollination-go/internal/client"
	"github.com/shaiso/pollination-go/internal/domain"
)

// NewRecipeCmd создаёт группу команд для работы с recipes.
func NewRecipeCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage project recipes",
	}

	cmd.AddCommand(newRecipeAddCmd(clientFn, outputFn))

	return cmd
}

func newRecipeAddCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "add PROJECT OWNER/NAME/TAG",
		Short: "Add a recipe to a project via a filter",
		Long: "Add a recipe to a project. The recipe is selected from the set of recipes\n" +
			"visible to the current account by owner, name and tag.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			owner, name, tag, err := splitRecipeRef(args[1])
			if err != nil {
				return err
			}

			filter := domain.RecipeFilter{Owner: owner, Name: name, Tag: tag}
			if err := c.AddRecipeFilter(cmd.Context(), args[0], filter); err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Recipe %s added to project %s", args[1], args[0]))
			return nil
		},
	}
}
