package cli

import "github.com/spf13/cobra"

const greeting = "Hello, World..!"

func newHelloCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Print a greeting",
		Args:  noArgs,
		Run: func(_ *cobra.Command, _ []string) {
			a.printer.Line(greeting)
		},
	}
}
