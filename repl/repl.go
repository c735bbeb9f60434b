// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"nire/internal/ast"
	"nire/internal/errors"
	"nire/internal/operators"
	"nire/internal/parser"
)

const PROMPT = ">> "

// Start runs the read-parse-print loop. Each line is tried as a
// definition first and as an expression second; fixity declarations
// extend the session's operator table for later lines.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)
	table := operators.DefaultTable()

	for {
		fmt.Print(PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		table = eval(line, table)
	}
}

func eval(line string, table *operators.Table) *operators.Table {
	if isFixityLine(line) {
		program, err := parser.ParseProgram("repl", line, table)
		if err != nil {
			report(line, err)
			return table
		}
		fmt.Println(program.String())
		return extend(table, program)
	}

	if def, err := parser.ParseDefinition("repl", line, table); err == nil {
		fmt.Println(def.String())
		return table
	}

	expr, err := parser.ParseExpression("repl", line, table)
	if err != nil {
		report(line, err)
		return table
	}
	fmt.Println(expr.String())
	return table
}

func isFixityLine(line string) bool {
	word := strings.TrimSpace(line)
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	switch word {
	case "infix", "infixl", "infixr":
		return true
	}
	return false
}

func extend(table *operators.Table, program *ast.Program) *operators.Table {
	for _, decl := range program.Decls {
		fixity, ok := decl.(*ast.FixityDecl)
		if !ok {
			continue
		}
		assoc, err := operators.AssocFromKeyword(fixity.Assoc)
		if err != nil {
			continue
		}
		names := make([]string, len(fixity.Ops))
		for i, op := range fixity.Ops {
			names[i] = op.Value
		}
		table = table.Extend(fixity.Precedence, assoc, names...)
	}
	return table
}

func report(line string, err error) {
	reporter := errors.NewErrorReporter("repl", line)
	for _, diag := range errors.FromParse(err) {
		fmt.Print(reporter.FormatError(diag))
	}
}
