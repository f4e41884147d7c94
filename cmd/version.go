package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cwbudde/restirnv/internal/gldriver"
	"github.com/cwbudde/restirnv/internal/rtx"
)

var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build capabilities",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "restirnv version %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if gldriver.Built {
		fmt.Fprintln(w, "  GL driver: built")
	} else {
		fmt.Fprintln(w, "  GL driver: not built (rebuild with -tags gpu)")
	}
	for _, p := range rtx.Profiles() {
		fmt.Fprintf(w, "  Profile %s: %s\n", p.Name, p.Extension)
	}
}
