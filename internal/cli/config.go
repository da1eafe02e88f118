package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/teakit/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long:  `Print every setting after defaults, the config file and TEAKIT_ environment overrides have been applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, cfg, err := loadManager(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if printPath, _ := cmd.Flags().GetBool("path"); printPath {
				_, err := fmt.Fprintln(out, m.Path())
				return err
			}
			settings := config.Settings(cfg)
			for _, k := range slices.Sorted(maps.Keys(settings)) {
				if _, err := fmt.Fprintf(out, "%s = %s\n", k, formatValue(settings[k])); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("path", false, "Print the full path of the config file")
	return cmd
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}
