package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/observability"
)

// checkCommand verifies that data files can be opened and read.
func (c *CLI) checkCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check that data files exist and have a supported format",
		Long: `Check that data files exist and have a supported format.

Each file goes through the data manager's open, read and close steps.

Examples:
  dataportal check model.dat
  dataportal check --format dat model.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := c.check(cmd.Context(), path, format); err != nil {
					c.printError("%s: %s", path, errors.UserMessage(err))
					failed++
					continue
				}
				c.printSuccess("%s", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "data format (default: file extension)")
	return cmd
}

func (c *CLI) check(ctx context.Context, path, format string) error {
	logger := loggerFromContext(ctx)

	m, err := c.newManager(path, format, nil)
	if err != nil {
		return err
	}
	defer m.Close()

	err = observability.Track(ctx, observability.OpCheck, formatName(path, format), path, func() error {
		if err := m.Open(); err != nil {
			return err
		}
		return m.Read()
	})
	if err != nil {
		return err
	}
	logger.Debug("checked data file", "path", path)
	return nil
}
