package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/eternalai-org/eternal-zoo/pkg/catalog"
	"github.com/eternalai-org/eternal-zoo/pkg/errors"
)

// modelsCmd lists the catalog in a stable, human-friendly order.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List all catalog models",
	Long: `List every canonical model name in the catalog together with its task,
backend, weight selector, and published hash (if any).`,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header("NAME", "TASK", "BACKEND", "WEIGHTS", "HASH")

	for _, m := range cat.Models() {
		hash, err := cat.Identity().ResolveName(m.Name)
		if err != nil {
			if !errors.IsNotFound(err) {
				return err
			}
			hash = "(unpublished)"
		}

		kind := string(m.Backend)
		if m.IsLoRA() {
			kind += " (lora)"
		}

		if err := table.Append(m.Name, string(m.Task), kind, selectorLabel(m), hash); err != nil {
			return err
		}
	}

	return table.Render()
}

// hashesCmd prints the identity table.
var hashesCmd = &cobra.Command{
	Use:   "hashes",
	Short: "List published content-address hashes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(cmd.OutOrStdout())
		table.Header("HASH", "MODEL")
		for _, entry := range cat.Identity().Entries() {
			if err := table.Append(entry.Hash, entry.Model); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(hashesCmd)
}

// selectorLabel is shared by models and inspect output.
func selectorLabel(m *catalog.Model) string {
	sel, err := m.WeightSelector()
	if err != nil {
		return "-"
	}
	return sel.Kind.String() + ":" + sel.Value
}
