package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dataportal/pkg/dataset"
	"github.com/matzehuels/dataportal/pkg/observability"
)

// writeCommand writes a dataset description through a data manager.
func (c *CLI) writeCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "write <dataset>",
		Short: "Write set data from a dataset description",
		Long: `Write set data from a dataset description (.toml, .yaml, .yml or .json)
to a data file. The output format is taken from --format or the output file
extension.

Examples:
  dataportal write sets.toml -o model.dat
  dataportal write sets.yaml -o model.txt --format dat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.write(cmd.Context(), args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output data file (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "data format (default: output extension)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (c *CLI) write(ctx context.Context, input, output, format string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	ds, err := dataset.Load(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded dataset", "path", input, "sets", len(ds.Model.Sets), "namespaces", ds.Data.Len())

	m, err := c.newManager(output, format, nil)
	if err != nil {
		return err
	}
	defer m.Close()

	err = observability.Track(ctx, observability.OpWrite, formatName(output, format), output, func() error {
		return m.Write(ds.Model, ds.Data)
	})
	if err != nil {
		return err
	}
	prog.done("Wrote " + output)

	c.printSuccess("Wrote %d sets", len(ds.Model.Sets))
	c.printDetail("%d namespaces", ds.Data.Len())
	c.printFile(output)
	return nil
}
