package menu

import "github.com/spf13/cobra"

func NewMenuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu commands",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
