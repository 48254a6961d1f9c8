package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrt/internal/config"
	"github.com/vango-dev/vrt/internal/treefile"
	"github.com/vango-dev/vrt/pkg/host/memhost"
)

func diffCmd(opts *globalOptions) *cobra.Command {
	var structural bool

	cmd := &cobra.Command{
		Use:   "diff <old.yaml> <new.yaml>",
		Short: "Reconcile two trees and print the host mutations",
		Long: `Mount the first tree, reconcile it against the second and print every
host mutation the reconciliation performed, in order.

Children are matched by position, so removing the last item of a list
removes one node while removing the first patches every item.

Examples:
  vdomctl diff before.yaml after.yaml
  vdomctl diff before.yaml after.yaml --structural --format=json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runDiff(e, args[0], args[1], structural, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&structural, "structural", false, "Omit detached node creation")

	return cmd
}

// mutationJSON is the JSON form of a memhost.Mutation.
type mutationJSON struct {
	Op     string `json:"op"`
	Node   int    `json:"node"`
	Parent int    `json:"parent,omitempty"`
	Before int    `json:"before,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
}

func runDiff(e *env, oldPath, newPath string, structural bool, w io.Writer) error {
	prev, err := treefile.Load(oldPath)
	if err != nil {
		return err
	}
	next, err := treefile.Load(newPath)
	if err != nil {
		return err
	}

	h, root := e.newRoot()
	if err := root.Render(prev); err != nil {
		reportTreeErrors(err)
	}
	h.ResetMutations()
	if err := root.Render(next); err != nil {
		reportTreeErrors(err)
	}

	mutations := h.Mutations()
	if structural {
		mutations = h.StructuralMutations()
	}

	switch e.cfg.Output.Format {
	case config.FormatJSON:
		out := make([]mutationJSON, len(mutations))
		for i, m := range mutations {
			out[i] = mutationJSON{
				Op:     m.Op.String(),
				Node:   m.Node,
				Parent: m.Parent,
				Before: m.Before,
				Key:    m.Key,
				Value:  m.Value,
			}
		}
		if err := writeJSON(w, e.cfg.Output.Indent, out); err != nil {
			return err
		}
	default:
		writeMutations(w, mutations)
	}

	return e.writeMetrics(w)
}

func writeMutations(w io.Writer, mutations []memhost.Mutation) {
	if len(mutations) == 0 {
		fmt.Fprintln(w, "no changes")
		return
	}
	for _, m := range mutations {
		fmt.Fprintln(w, m.String())
	}
}

func writeJSON(w io.Writer, indent string, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	return enc.Encode(v)
}
