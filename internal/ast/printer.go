package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (i *Ident) String() string {
	return i.Value
}

func (l *IntLiteral) String() string {
	return strconv.FormatInt(l.Value, 10)
}

func (l *FloatLiteral) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64)
}

func (l *StringLiteral) String() string {
	return strconv.Quote(l.Value)
}

func (l *CharLiteral) String() string {
	return strconv.QuoteRune(l.Value)
}

func (l *BoolLiteral) String() string {
	if l.Value {
		return "True"
	}
	return "False"
}

func (l *ShaderLiteral) String() string {
	return fmt.Sprintf("[%s|%s|]", l.Tag, l.Source)
}

func (v *VarExpr) String() string {
	return v.Name
}

func (a *AppExpr) String() string {
	return fmt.Sprintf("(%s %s)", a.Fn.String(), a.Arg.String())
}

func (l *LambdaExpr) String() string {
	return fmt.Sprintf("(\\%s -> %s)", l.Param.String(), l.Body.String())
}

func (b *BinopExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (b *IfBranch) String() string {
	return fmt.Sprintf("| %s -> %s", b.Cond.String(), b.Body.String())
}

// String prints a MultiIfExpr in the canonical guard form, including the
// synthetic True guard of a desugared if/then/else.
func (m *MultiIfExpr) String() string {
	var b strings.Builder
	b.WriteString("(if")
	for _, branch := range m.Branches {
		b.WriteString(" ")
		b.WriteString(branch.String())
	}
	b.WriteString(")")
	return b.String()
}

// String prints a LetExpr in the explicit block form, which round-trips
// through the parser regardless of the original layout.
func (l *LetExpr) String() string {
	var b strings.Builder
	b.WriteString("(let { ")
	for i, def := range l.Defs {
		if i > 0 {
			b.WriteString(" ; ")
		}
		b.WriteString(def.String())
	}
	b.WriteString(" } in ")
	b.WriteString(l.Body.String())
	b.WriteString(")")
	return b.String()
}

func (a *CaseAlt) String() string {
	return fmt.Sprintf("%s -> %s", a.Pattern.String(), a.Body.String())
}

func (c *CaseExpr) String() string {
	var b strings.Builder
	b.WriteString("(case ")
	b.WriteString(c.Scrutinee.String())
	b.WriteString(" of { ")
	for i, alt := range c.Alts {
		if i > 0 {
			b.WriteString(" ; ")
		}
		b.WriteString(alt.String())
	}
	b.WriteString(" })")
	return b.String()
}

func (l *ListExpr) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (r *RangeExpr) String() string {
	return fmt.Sprintf("[%s..%s]", r.Low.String(), r.High.String())
}

func (t *TupleExpr) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (f *RecordField) String() string {
	return fmt.Sprintf("%s = %s", f.Name.Value, f.Value.String())
}

func (r *RecordExpr) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (r *RecordInsertExpr) String() string {
	return fmt.Sprintf("{%s | %s = %s}", r.Base.String(), r.Field.Value, r.Value.String())
}

func (r *RecordRemoveExpr) String() string {
	return fmt.Sprintf("{%s - %s}", r.Base.String(), r.Field.Value)
}

func (r *RecordModifyExpr) String() string {
	parts := make([]string, len(r.Updates))
	for i, u := range r.Updates {
		parts[i] = fmt.Sprintf("%s <- %s", u.Name.Value, u.Value.String())
	}
	return fmt.Sprintf("{%s | %s}", r.Base.String(), strings.Join(parts, ", "))
}

func (a *AccessExpr) String() string {
	return fmt.Sprintf("%s.%s", a.Receiver.String(), a.Field.Value)
}

func (p *VarPattern) String() string {
	return p.Name
}

func (p *WildcardPattern) String() string {
	return "_"
}

func (p *LiteralPattern) String() string {
	return p.Value.String()
}

func (p *CtorPattern) String() string {
	if p.Name == "::" && len(p.Args) == 2 {
		return fmt.Sprintf("(%s :: %s)", p.Args[0].String(), p.Args[1].String())
	}
	if len(p.Args) == 0 {
		return p.Name
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("(%s %s)", p.Name, strings.Join(parts, " "))
}

func (p *TuplePattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *ListPattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (p *RecordPattern) String() string {
	parts := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		parts[i] = f.Value
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (p *AliasPattern) String() string {
	return fmt.Sprintf("(%s as %s)", p.Pattern.String(), p.Name.Value)
}

func (t *TypeVar) String() string {
	return t.Name
}

func (t *TypeCon) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("(%s %s)", t.Name, strings.Join(parts, " "))
}

func (t *FuncType) String() string {
	return fmt.Sprintf("(%s -> %s)", t.Arg.String(), t.Result.String())
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (f *TypeField) String() string {
	return fmt.Sprintf("%s : %s", f.Name.Value, f.Type.String())
}

func (t *RecordType) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.String()
	}
	if t.Ext != nil {
		return fmt.Sprintf("{%s | %s}", t.Ext.Value, strings.Join(parts, ", "))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *ValueDef) String() string {
	return fmt.Sprintf("%s = %s", d.Head.String(), d.Body.String())
}

func (a *TypeAnnotation) String() string {
	return fmt.Sprintf("%s : %s", a.Name.Value, a.Type.String())
}

func (f *FixityDecl) String() string {
	ops := make([]string, len(f.Ops))
	for i, op := range f.Ops {
		ops[i] = op.Value
	}
	return fmt.Sprintf("%s %d %s", f.Assoc, f.Precedence, strings.Join(ops, " "))
}

func (p *Program) String() string {
	var b strings.Builder
	for i, decl := range p.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl.String())
	}
	return b.String()
}
