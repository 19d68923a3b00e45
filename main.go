package main

import (
	"fmt"
	"os"

	"fjacquet/supply-report/cmd/batch"
	"fjacquet/supply-report/cmd/report"
	"fjacquet/supply-report/cmd/root"
	"fjacquet/supply-report/cmd/show"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(show.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(root.ExitCode(err))
	}
}
