package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/restirnv/internal/calltrace"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <capture>",
	Short: "Print a call capture",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	r, err := calltrace.NewReader(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	entries, err := r.ReadAll()
	if err != nil {
		return err
	}
	printEntries(cmd.OutOrStdout(), entries)
	return nil
}

func printEntries(w io.Writer, entries []calltrace.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No calls captured")
		return
	}

	fmt.Fprintf(w, "Found %d call(s):\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "#%d %s %s\n", e.Seq, e.Timestamp.Format("15:04:05.000"), formatCall(e))
	}
}

func formatCall(e calltrace.Entry) string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = strconv.FormatUint(uint64(a), 10)
	}
	return e.Proc + "(" + strings.Join(args, ", ") + ")"
}
