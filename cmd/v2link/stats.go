package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"v2link/internal/config"
	"v2link/internal/db"
	"v2link/internal/logger"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show conversion usage statistics",
	Long:  `Displays a dashboard of recorded conversions: totals, distinct users, and the per-protocol breakdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}

		database, err := db.Connect(cfg.Database.Path)
		if err != nil {
			logger.Log.Fatalf("Error connecting to DB: %v", err)
		}
		defer db.Close(database)

		byProtocol, err := db.CountByProtocol(database)
		if err != nil {
			logger.Log.Fatalf("Error reading stats: %v", err)
		}
		users, err := db.CountUsers(database)
		if err != nil {
			logger.Log.Fatalf("Error reading stats: %v", err)
		}

		var total int64
		for _, row := range byProtocol {
			total += row.Count
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		fmt.Println("\n📊 \033[1mV2LINK USAGE DASHBOARD\033[0m")
		fmt.Println("────────────────────────────────────────")

		fmt.Fprintln(w, "\033[1;36m[ SYSTEM ]\033[0m\t")
		fmt.Fprintf(w, "  Database Path:\t%s\n", cfg.Database.Path)
		fmt.Fprintf(w, "  Total Conversions:\t%d\n", total)
		fmt.Fprintf(w, "  Distinct Users:\t%d\n", users)
		fmt.Fprintln(w, "\t")

		fmt.Fprintln(w, "\033[1;36m[ PROTOCOLS ]\033[0m\t")
		if len(byProtocol) == 0 {
			fmt.Fprintln(w, "  (No conversions recorded)")
		} else {
			for _, row := range byProtocol {
				fmt.Fprintf(w, "  %s:\t%d\n", row.Protocol, row.Count)
			}
		}

		w.Flush()
		fmt.Println("")
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
