package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacefill/internal/curve"
	"github.com/vovakirdan/spacefill/internal/storage"
)

var (
	flagListStored bool
	flagDelete     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Store curve lookup tables in SQLite",
	Long: `Build a curve, verify it and write its full visiting order into the
lookup table database, replacing any table stored for the same kind
and order. Consumers can then read the mapping without building curves.

Examples:
  sfc export --kind moore --order 6
  sfc export --list
  sfc export --kind hilbert --order 3 --delete
  sfc export --db ./curves.db`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&flagListStored, "list", false, "List stored tables")
	exportCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the stored table for --kind and --order")
}

func runExport(cmd *cobra.Command, args []string) {
	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		logger.Error("cannot open lookup table database", "path", settings.Storage.DBPath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagListStored:
		listStored(store)
	case flagDelete:
		if err := store.DeleteCurve(settings.Curve.Kind, settings.Curve.Order); err != nil {
			store.Close()
			logger.Error("cannot delete table", "err", err)
			os.Exit(1)
		}
		logger.Info("table deleted", "kind", settings.Curve.Kind, "order", settings.Curve.Order)
	default:
		c := mustBuildCurve()
		if err := curve.Verify(c); err != nil {
			store.Close()
			logger.Error("refusing to export invalid curve", "err", err)
			os.Exit(1)
		}
		id, err := store.SaveCurve(c)
		if err != nil {
			store.Close()
			logger.Error("cannot save table", "err", err)
			os.Exit(1)
		}
		logger.Info("table exported", "id", id, "kind", c.Kind(), "order", c.Order(), "steps", c.Size(), "db", settings.Storage.DBPath)
	}
}

func listStored(store *storage.Store) {
	entries, err := store.ListCurves()
	if err != nil {
		store.Close()
		logger.Error("cannot list tables", "err", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No lookup tables stored yet.")
		fmt.Println()
		fmt.Println("Run 'sfc export --kind <id> --order <n>' to store one.")
		return
	}

	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %s\n", "Kind", "Order", "Side", "Steps", "Date")
	fmt.Printf("  %-8s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "----", "-----", "----")
	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-5d  %-6d  %-8d  %s\n", e.Kind, e.Order, e.Side, e.Size, dateStr)
	}
}
