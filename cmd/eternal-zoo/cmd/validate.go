package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eternalai-org/eternal-zoo/pkg/catalog"
)

// validateCmd checks catalog integrity and exits non-zero on violations,
// mirroring the fatal treatment the serving runtime gives a bad catalog.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog integrity",
	Long: `Validate every catalog entry against its backend schema and check the
cross-entry rules: hash coverage, LoRA base-model resolvability, and the
hash/name bijection.

All violations are reported in one run so several problems can be fixed
per edit cycle.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var (
		cat *catalog.Catalog
		err error
	)
	if path := viper.GetString("catalog"); path != "" {
		cat, err = catalog.NewFromPath(path)
	} else {
		cat, err = catalog.NewEmbedded()
	}
	if err != nil {
		// Construction failures (corrupt identity table, undecodable
		// entries) are validation failures too.
		return err
	}

	violations := cat.Validate()
	if len(violations) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d models, %d published hashes\n",
			cat.Len(), cat.Identity().Len())
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(cmd.ErrOrStderr(), v.String())
	}
	return fmt.Errorf("catalog failed validation with %d violation(s)", len(violations))
}
