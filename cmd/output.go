package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// report is what every command prints on stdout.
type report struct {
	RunID   string `json:"run_id"`
	Command string `json:"command"`
	Result  any    `json:"result"`
}

func writeReport(w io.Writer, runID, command string, result any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report{RunID: runID, Command: command, Result: result})
}

func (e *env) print(cmd *cobra.Command, result any) {
	if err := writeReport(cmd.OutOrStdout(), e.runID, cmd.Name(), result); err != nil {
		e.fatal("writing a report", err)
	}
}
