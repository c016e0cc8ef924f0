package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"v2link/internal/link"

	"github.com/spf13/cobra"
)

var protocolsCmd = &cobra.Command{
	Use:   "protocols",
	Short: "List supported protocols and their required fields",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		fmt.Println("\n📡 \033[1mSUPPORTED PROTOCOLS\033[0m")
		fmt.Println("────────────────────────────────────────")

		fmt.Fprintln(w, "  PROTOCOL\tSCHEME\tALIASES\tREQUIRED FIELDS")
		for _, k := range link.Kinds {
			fmt.Fprintf(w, "  %s\t%s://\t%s\t%s\n",
				k,
				k.Scheme(),
				strings.Join(k.Aliases(), ", "),
				strings.Join(link.RequiredFields(k), ", "),
			)
		}
		w.Flush()

		fmt.Println("\nShadowsocks ciphers:")
		fmt.Println("  " + strings.Join(link.CipherMethods, ", "))
		fmt.Println("")
	},
}

func init() {
	rootCmd.AddCommand(protocolsCmd)
}
