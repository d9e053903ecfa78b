package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "wholesale-portal",
		Short: "Wholesale ordering portal for retailers and the vendor",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the wholesale-portal service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	importCmd = &cobra.Command{
		Use:   "import",
		Short: "Load a JSON export of retailers, products and orders",
		RunE:  runImport,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE:  runMigrate,
	}

	cfgFile    string
	importFile string
	version    string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "path to the export file")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(versionCmd, importCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service", slog.String("err", err.Error()))
		os.Exit(-1)
	}
}
