package cmd

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// inspectCmd prints the full record for one model.
var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Show the full catalog record for a model",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	m, err := cat.Model(args[0])
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "weights:", selectorLabel(m))

	if hash, err := cat.Identity().ResolveName(m.Name); err == nil {
		fmt.Fprintln(w, "hash:", hash)
	} else if !errors.IsNotFound(err) {
		return err
	}

	if m.IsLoRA() {
		base, err := cat.BaseOf(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "applies to:", base.Name)
	}

	return nil
}
