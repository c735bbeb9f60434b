// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"nire/internal/errors"
	"nire/internal/operators"
	"nire/internal/parser"
	"nire/repl"
)

func main() {
	if len(os.Args) < 2 {
		repl.Start(os.Stdin)
		return
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	table, err := loadTable(os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load fixity table: %v\n", err)
		os.Exit(1)
	}

	program, parseErr := parser.ParseProgram(path, string(source), table)

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if parseErr != nil {
		reporter := errors.NewErrorReporter(path, string(source))
		for _, diag := range errors.FromParse(parseErr) {
			fmt.Print(reporter.FormatError(diag))
		}
		color.Red("Compilation failed after %s", formattedDuration)
		os.Exit(1)
	}

	fmt.Println(program.String())
	color.Green("Successfully processed %s in %s", path, formattedDuration)
}

// loadTable reads the optional fixity file given after the source path;
// without one, parsing uses the prelude fixities.
func loadTable(args []string) (*operators.Table, error) {
	if len(args) == 0 {
		return operators.DefaultTable(), nil
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	return operators.ParseTable(args[0], string(source))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
