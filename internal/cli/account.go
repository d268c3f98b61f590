package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/pollination-go/internal/client"
)

// NewAccountCmd создаёт группу команд для просмотра аккаунтов.
func NewAccountCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect accounts",
	}

	cmd.AddCommand(
		newAccountShowCmd(clientFn, outputFn),
		newAccountWhoamiCmd(clientFn, outputFn),
	)

	return cmd
}

func newAccountShowCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show [NAME]",
		Short: "Show an account (the configured organization by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			account, err := c.GetAccount(cmd.Context(), name)
			if err != nil {
				return err
			}

			out.Print(
				[]string{"ID", "NAME", "TYPE", "DISPLAY_NAME"},
				[][]string{{account.ID, account.Name, account.AccountType, account.DisplayName}},
				account,
			)
			return nil
		},
	}
}

func newAccountWhoamiCmd(clientFn func() *client.Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the user owning the API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := clientFn()
			out := outputFn()

			user, err := c.GetUser(cmd.Context())
			if err != nil {
				return err
			}

			out.Print(
				[]string{"ID", "USERNAME", "NAME", "EMAIL"},
				[][]string{{user.ID, user.Username, user.Name, user.Email}},
				user,
			)
			return nil
		},
	}
}
