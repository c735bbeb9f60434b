package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"nire/internal/errors"
)

// ConvertDiagnostics maps classified front-end errors onto LSP
// diagnostics. Positions convert from the compiler's 1-based lines and
// columns to the protocol's 0-based ones; the error's length stretches
// the range so editors underline the whole construct.
func ConvertDiagnostics(diags []errors.CompilerError) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))

	for _, diag := range diags {
		length := diag.Length
		if length <= 0 {
			length = 1
		}

		line := uint32(max(diag.Position.Line-1, 0))
		char := uint32(max(diag.Position.Column-1, 0))

		d := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: char},
				End:   protocol.Position{Line: line, Character: char + uint32(length)},
			},
			Severity: ptrSeverity(severityFor(diag.Level)),
			Source:   ptrString("nire"),
			Message:  diag.Message,
		}
		if diag.Code != "" {
			d.Code = &protocol.IntegerOrString{Value: diag.Code}
		}

		out = append(out, d)
	}

	return out
}

func severityFor(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
