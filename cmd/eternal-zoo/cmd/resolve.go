package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// resolveCmd translates between hashes and canonical names.
var resolveCmd = &cobra.Command{
	Use:   "resolve <hash|name>",
	Short: "Resolve a content-address hash to a model name, or back",
	Long: `Resolve a content-address hash to its canonical model name, or a
canonical model name to its published hash.

The argument is first tried as a hash; if unregistered, it is tried as a
model name. Catalog entries without a published hash resolve to an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	arg := args[0]
	identity := cat.Identity()

	if name, err := identity.ResolveHash(arg); err == nil {
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}

	hash, err := identity.ResolveName(arg)
	if err != nil {
		if errors.IsNotFound(err) && !cat.Has(arg) {
			return &errors.UnknownModelError{Name: arg}
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
