package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrt/internal/config"
	"github.com/vango-dev/vrt/internal/errors"
	"github.com/vango-dev/vrt/internal/treefile"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <tree.yaml>",
		Short: "Mount a tree and print the host HTML",
		Long: `Mount the tree described in a YAML or JSON file into an empty container
and print the resulting host tree as HTML.

Problems in the tree, such as nodes without a tag or event props holding
plain values, are reported on stderr; the rest of the tree still renders.

Examples:
  vdomctl render tree.yaml
  vdomctl render tree.json --metrics`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runRender(e, args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

func runRender(e *env, path string, w io.Writer) error {
	tree, err := treefile.Load(path)
	if err != nil {
		return err
	}

	h, root := e.newRoot()
	if err := root.Render(tree); err != nil {
		reportTreeErrors(err)
	}

	switch e.cfg.Output.Format {
	case config.FormatJSON:
		if err := writeJSON(w, e.cfg.Output.Indent, map[string]string{"html": h.Root().InnerHTML()}); err != nil {
			return errors.New("E120").Wrap(err)
		}
	default:
		fmt.Fprintln(w, h.Root().InnerHTML())
	}

	return e.writeMetrics(w)
}

// reportTreeErrors prints every problem joined into a Render error.
func reportTreeErrors(err error) {
	for _, e := range errors.Flatten(err) {
		if ve, ok := e.(*errors.Error); ok {
			warn("%s", ve.FormatCompact())
			continue
		}
		warn("%s", e)
	}
}
