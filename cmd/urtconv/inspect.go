package main

import (
	"fmt"

	perrors "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"

	"github.com/ib-77/urt/internal/config"
	"github.com/ib-77/urt/internal/convert"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode a union document and print its variant",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initCommand(cmd)
		},
		RunE: runInspect,
	}

	cmd.Flags().String(config.Kind, string(convert.KindErrorOption), "union kind: double, doubleoption or erroroption")
	cmd.Flags().String(config.From, string(convert.FormatJSON), "input format: json or yaml")
	cmd.Flags().String(config.In, "", "input file (default stdin)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	kind, err := convert.ParseKind(config.GetString(config.Kind))
	if err != nil {
		return err
	}
	from, err := convert.ParseFormat(config.GetString(config.From))
	if err != nil {
		return err
	}

	in := config.GetString(config.In)
	data, err := readInput(cmd, in)
	if err != nil {
		return perrors.WithContext(perrors.Wrap(err, perrors.CodeInvalidInput, "failed to read input"), "in", in)
	}

	doc, err := convert.Decode(kind, from, data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "kind: %s\nvariant: %s\nvalue: %s\n", doc.Kind, doc.Variant, doc)
	return err
}
