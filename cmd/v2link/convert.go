package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"v2link/internal/config"
	"v2link/internal/geoip"
	"v2link/internal/link"
	"v2link/internal/logger"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var convertName string
var convertBatch bool

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a JSON configuration to a share link",
	Long: `Reads a JSON server description from a file (or stdin when no file is given)
and prints the canonical share link. With --batch, every non-empty input line
is treated as one JSON object and converted independently.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}
		if err := geoip.Init(cfg.GeoIP.CountryPath); err != nil {
			logger.Log.Debugf("GeoIP disabled: %v", err)
		}
		defer geoip.Close()

		input, err := readInput(args)
		if err != nil {
			logger.Log.Fatalf("Error reading input: %v", err)
		}

		if convertBatch {
			runBatch(input)
			return
		}

		uri, err := link.Convert(string(input), convertName)
		if err != nil {
			logger.Log.Fatalf("Conversion failed: %v", err)
		}
		if verbose {
			if country, ok := geoip.Country(peekAddress(input)); ok {
				logger.Log.Infof("🌍 Server location: %s %s", geoip.Flag(country), country)
			}
		}
		fmt.Println(uri)
	},
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

// runBatch converts one JSON object per line, keeps going on failures and
// reports a summary at the end. Lines map 1:1 to output lines so results
// can be paired back up with a failed input.
func runBatch(input []byte) {
	lines := nonEmptyLines(string(input))

	bar := progressbar.Default(int64(len(lines)), "converting")
	var failed int
	for i, line := range lines {
		uri, err := link.Convert(line, convertName)
		if err != nil {
			failed++
			logger.Log.Warnf("Line %d: %v", i+1, err)
			fmt.Println("")
		} else {
			fmt.Println(uri)
		}
		_ = bar.Add(1)
	}

	logger.Log.Infof("✅ Converted %d/%d configurations", len(lines)-failed, len(lines))
	if failed > 0 {
		os.Exit(1)
	}
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func peekAddress(input []byte) string {
	var raw map[string]any
	if err := json.Unmarshal(input, &raw); err != nil {
		return ""
	}
	addr, _ := raw["address"].(string)
	return addr
}

func init() {
	convertCmd.Flags().StringVarP(&convertName, "name", "n", "", "Display name embedded in the link")
	convertCmd.Flags().BoolVar(&convertBatch, "batch", false, "Treat input as one JSON object per line")
	rootCmd.AddCommand(convertCmd)
}
