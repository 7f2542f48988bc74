package cli

import (
	"github.com/spf13/cobra"
)

// formatsCommand lists the registered data managers.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported data file formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := c.Registry.Formats()
			if len(fs) == 0 {
				c.printInfo("No formats registered")
				return nil
			}
			c.printTitle("Formats")
			for _, f := range fs {
				c.printKeyValue(f.Format, f.Description)
			}
			return nil
		},
	}
}
