package main

import (
	perrors "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/urt/internal/config"
	"github.com/ib-77/urt/internal/convert"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Decode a union document and re-encode it in another format",
		Example: `  echo '{"Value": 42}' | urtconv convert --kind erroroption --from json --to yaml
  URTCONV_KIND=double urtconv convert --from yaml --to json --in doc.yaml`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initCommand(cmd)
		},
		RunE: runConvert,
	}

	cmd.Flags().String(config.Kind, string(convert.KindErrorOption), "union kind: double, doubleoption or erroroption")
	cmd.Flags().String(config.From, string(convert.FormatJSON), "input format: json or yaml")
	cmd.Flags().String(config.To, string(convert.FormatYAML), "output format: json or yaml")
	cmd.Flags().String(config.In, "", "input file (default stdin)")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	kind, err := convert.ParseKind(config.GetString(config.Kind))
	if err != nil {
		return err
	}
	from, err := convert.ParseFormat(config.GetString(config.From))
	if err != nil {
		return err
	}
	to, err := convert.ParseFormat(config.GetString(config.To))
	if err != nil {
		return err
	}

	in := config.GetString(config.In)
	data, err := readInput(cmd, in)
	if err != nil {
		return perrors.WithContext(perrors.Wrap(err, perrors.CodeInvalidInput, "failed to read input"), "in", in)
	}

	zap.S().Debugw("converting document", "kind", kind, "from", from, "to", to, "bytes", len(data))

	out, err := convert.Convert(kind, from, to, data)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
