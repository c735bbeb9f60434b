package lsp

import (
	"strings"

	"nire/internal/ast"
)

// SemanticToken is one LSP semantic token entry. Line and StartChar are
// 0-based; TokenType indexes SemanticTokenTypes; TokenModifiers is a
// bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens walks a parsed program and gathers a token for
// every name occurrence worth highlighting. Desugared helper nodes all
// share one source span, so the encoder's position dedupe keeps the
// output clean.
func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken
	if program == nil {
		return tokens
	}

	for _, decl := range program.Decls {
		if fixity, ok := decl.(*ast.FixityDecl); ok {
			for _, op := range fixity.Ops {
				tokens = append(tokens, makeToken(op.Pos, op.Value, "operator", 1)...)
			}
			continue
		}
		if def, ok := decl.(ast.Definition); ok {
			tokens = append(tokens, walkDefinition(def, true)...)
		}
	}

	return tokens
}

// walkDefinition handles value definitions and type annotations. Heads
// read as functions at the top level and as variables inside a let.
func walkDefinition(def ast.Definition, topLevel bool) []SemanticToken {
	headType := "variable"
	if topLevel {
		headType = "function"
	}

	var tokens []SemanticToken
	switch d := def.(type) {
	case *ast.ValueDef:
		if head, ok := d.Head.(*ast.VarPattern); ok {
			tokens = append(tokens, makeToken(head.Pos, head.Name, headType, 1)...)
		} else {
			tokens = append(tokens, walkPattern(d.Head, "variable")...)
		}
		tokens = append(tokens, walkExpr(d.Body)...)
	case *ast.TypeAnnotation:
		tokens = append(tokens, makeToken(d.Name.Pos, d.Name.Value, headType, 1)...)
		tokens = append(tokens, walkType(d.Type)...)
	}
	return tokens
}

func walkExpr(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken
	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.VarExpr:
		if v.Name == "_" {
			// Synthetic receiver of a desugared accessor.
			return tokens
		}
		kind := "variable"
		if isCtorName(v.Name) {
			kind = "type"
		}
		tokens = append(tokens, makeToken(v.Pos, v.Name, kind, 0)...)

	case *ast.AppExpr:
		tokens = append(tokens, walkExpr(v.Fn)...)
		tokens = append(tokens, walkExpr(v.Arg)...)

	case *ast.LambdaExpr:
		tokens = append(tokens, walkPattern(v.Param, "parameter")...)
		tokens = append(tokens, walkExpr(v.Body)...)

	case *ast.BinopExpr:
		tokens = append(tokens, walkExpr(v.Left)...)
		tokens = append(tokens, walkExpr(v.Right)...)

	case *ast.MultiIfExpr:
		for _, branch := range v.Branches {
			tokens = append(tokens, walkExpr(branch.Cond)...)
			tokens = append(tokens, walkExpr(branch.Body)...)
		}

	case *ast.LetExpr:
		for _, def := range v.Defs {
			tokens = append(tokens, walkDefinition(def, false)...)
		}
		tokens = append(tokens, walkExpr(v.Body)...)

	case *ast.CaseExpr:
		tokens = append(tokens, walkExpr(v.Scrutinee)...)
		for _, alt := range v.Alts {
			tokens = append(tokens, walkPattern(alt.Pattern, "variable")...)
			tokens = append(tokens, walkExpr(alt.Body)...)
		}

	case *ast.ListExpr:
		for _, el := range v.Elements {
			tokens = append(tokens, walkExpr(el)...)
		}

	case *ast.RangeExpr:
		tokens = append(tokens, walkExpr(v.Low)...)
		tokens = append(tokens, walkExpr(v.High)...)

	case *ast.TupleExpr:
		for _, el := range v.Elements {
			tokens = append(tokens, walkExpr(el)...)
		}

	case *ast.RecordExpr:
		for _, field := range v.Fields {
			tokens = append(tokens, makeToken(field.Name.Pos, field.Name.Value, "property", 1)...)
			tokens = append(tokens, walkExpr(field.Value)...)
		}

	case *ast.RecordInsertExpr:
		tokens = append(tokens, walkExpr(v.Base)...)
		tokens = append(tokens, makeToken(v.Field.Pos, v.Field.Value, "property", 1)...)
		tokens = append(tokens, walkExpr(v.Value)...)

	case *ast.RecordRemoveExpr:
		tokens = append(tokens, walkExpr(v.Base)...)
		tokens = append(tokens, makeToken(v.Field.Pos, v.Field.Value, "property", 0)...)

	case *ast.RecordModifyExpr:
		tokens = append(tokens, walkExpr(v.Base)...)
		for _, update := range v.Updates {
			tokens = append(tokens, makeToken(update.Name.Pos, update.Name.Value, "property", 0)...)
			tokens = append(tokens, walkExpr(update.Value)...)
		}

	case *ast.AccessExpr:
		tokens = append(tokens, walkExpr(v.Receiver)...)
		tokens = append(tokens, makeToken(v.Field.Pos, v.Field.Value, "property", 0)...)
	}

	return tokens
}

// walkPattern reports every name a pattern binds. bindType is the token
// type for bound names: parameters in lambdas, variables elsewhere.
func walkPattern(pat ast.Pattern, bindType string) []SemanticToken {
	var tokens []SemanticToken

	switch v := pat.(type) {
	case *ast.VarPattern:
		if v.Name == "_" {
			return tokens
		}
		tokens = append(tokens, makeToken(v.Pos, v.Name, bindType, 1)...)

	case *ast.CtorPattern:
		if isCtorName(v.Name) {
			tokens = append(tokens, makeToken(v.Pos, v.Name, "type", 0)...)
		}
		for _, arg := range v.Args {
			tokens = append(tokens, walkPattern(arg, bindType)...)
		}

	case *ast.TuplePattern:
		for _, el := range v.Elements {
			tokens = append(tokens, walkPattern(el, bindType)...)
		}

	case *ast.ListPattern:
		for _, el := range v.Elements {
			tokens = append(tokens, walkPattern(el, bindType)...)
		}

	case *ast.RecordPattern:
		for _, field := range v.Fields {
			tokens = append(tokens, makeToken(field.Pos, field.Value, bindType, 1)...)
		}

	case *ast.AliasPattern:
		tokens = append(tokens, walkPattern(v.Pattern, bindType)...)
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.Value, bindType, 1)...)
	}

	return tokens
}

func walkType(t ast.TypeExpr) []SemanticToken {
	var tokens []SemanticToken

	switch v := t.(type) {
	case *ast.TypeVar:
		tokens = append(tokens, makeToken(v.Pos, v.Name, "typeParameter", 0)...)

	case *ast.TypeCon:
		tokens = append(tokens, makeToken(v.Pos, v.Name, "type", 0)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkType(arg)...)
		}

	case *ast.FuncType:
		tokens = append(tokens, walkType(v.Arg)...)
		tokens = append(tokens, walkType(v.Result)...)

	case *ast.TupleType:
		for _, el := range v.Elements {
			tokens = append(tokens, walkType(el)...)
		}

	case *ast.RecordType:
		if v.Ext != nil {
			tokens = append(tokens, makeToken(v.Ext.Pos, v.Ext.Value, "typeParameter", 0)...)
		}
		for _, field := range v.Fields {
			tokens = append(tokens, makeToken(field.Name.Pos, field.Name.Value, "property", 1)...)
			tokens = append(tokens, walkType(field.Type)...)
		}
	}

	return tokens
}

// isCtorName reports whether a (possibly qualified) name refers to a
// constructor: its last segment starts uppercase.
func isCtorName(name string) bool {
	last := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		last = name[i+1:]
	}
	return last != "" && last[0] >= 'A' && last[0] <= 'Z'
}

// makeToken creates the semantic token for one name occurrence. The
// name's length, not the node's span, sets the token length so applied
// constructors highlight just their head.
func makeToken(pos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(len(value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
