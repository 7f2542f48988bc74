package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dataportal/pkg/observability"
	"github.com/matzehuels/dataportal/pkg/portal"
)

// loadCommand runs a data file through the read path against a model
// declared on the command line.
func (c *CLI) loadCommand() *cobra.Command {
	var (
		format     string
		sets       []string
		params     []string
		namespaces []string
	)

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a data file into a model",
		Long: `Load a data file into a model declared with --set and --param.

The file is opened, read and processed in one pass by the include processor.
Loaded set and param names are listed per namespace.

The dataportal binary ships without an include processor. A program embedding
this CLI supplies one through CLI.Processor; without it, load checks that the
file can be read, prints a warning and stops there.

Examples:
  dataportal load model.dat --set S --set T --param p
  dataportal load model.dat --set S --namespace NS1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := &portal.StaticModel{Sets: sets, Params: params}
			extra := portal.Options{}
			if len(namespaces) > 0 {
				extra[portal.OptionNamespace] = namespaces
			}
			return c.load(cmd.Context(), args[0], format, model, extra)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "data format (default: file extension)")
	cmd.Flags().StringSliceVar(&sets, "set", nil, "model set name (repeatable)")
	cmd.Flags().StringSliceVar(&params, "param", nil, "model param name (repeatable)")
	cmd.Flags().StringSliceVar(&namespaces, "namespace", nil, "namespace to load (repeatable)")
	return cmd
}

func (c *CLI) load(ctx context.Context, path, format string, model portal.Model, extra portal.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, err := c.newManager(path, format, extra)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Open(); err != nil {
		return err
	}
	if err := m.Read(); err != nil {
		return err
	}

	if c.Processor == nil {
		c.printWarning("No include processor configured; %s was checked but not processed", path)
		return nil
	}

	data := portal.NewData()
	err = observability.Track(ctx, observability.OpProcess, formatName(path, format), path, func() error {
		return m.Process(ctx, model, data, portal.Defaults{})
	})
	if err != nil {
		return err
	}
	prog.done("Processed " + path)

	c.printSuccess("Loaded %s", path)
	for ns, block := range data.All() {
		label := string(ns)
		if ns == portal.Global {
			label = "(global)"
		}
		c.printKeyValue(label, strings.Join(block.Names(), ", "))
	}
	return nil
}
