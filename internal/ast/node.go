package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string

	// setSpan powers Respan and keeps the node set closed to this package.
	setSpan(pos, end Position)
}

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (l *IntLiteral) NodePos() Position    { return l.Pos }
func (l *IntLiteral) NodeEndPos() Position { return l.EndPos }
func (*IntLiteral) NodeType() NodeType     { return INT_LITERAL }

func (l *FloatLiteral) NodePos() Position    { return l.Pos }
func (l *FloatLiteral) NodeEndPos() Position { return l.EndPos }
func (*FloatLiteral) NodeType() NodeType     { return FLOAT_LITERAL }

func (l *StringLiteral) NodePos() Position    { return l.Pos }
func (l *StringLiteral) NodeEndPos() Position { return l.EndPos }
func (*StringLiteral) NodeType() NodeType     { return STRING_LITERAL }

func (l *CharLiteral) NodePos() Position    { return l.Pos }
func (l *CharLiteral) NodeEndPos() Position { return l.EndPos }
func (*CharLiteral) NodeType() NodeType     { return CHAR_LITERAL }

func (l *BoolLiteral) NodePos() Position    { return l.Pos }
func (l *BoolLiteral) NodeEndPos() Position { return l.EndPos }
func (*BoolLiteral) NodeType() NodeType     { return BOOL_LITERAL }

func (l *ShaderLiteral) NodePos() Position    { return l.Pos }
func (l *ShaderLiteral) NodeEndPos() Position { return l.EndPos }
func (*ShaderLiteral) NodeType() NodeType     { return SHADER_LITERAL }

func (v *VarExpr) NodePos() Position    { return v.Pos }
func (v *VarExpr) NodeEndPos() Position { return v.EndPos }
func (*VarExpr) NodeType() NodeType     { return VAR_EXPR }

func (a *AppExpr) NodePos() Position    { return a.Pos }
func (a *AppExpr) NodeEndPos() Position { return a.EndPos }
func (*AppExpr) NodeType() NodeType     { return APP_EXPR }

func (l *LambdaExpr) NodePos() Position    { return l.Pos }
func (l *LambdaExpr) NodeEndPos() Position { return l.EndPos }
func (*LambdaExpr) NodeType() NodeType     { return LAMBDA_EXPR }

func (b *BinopExpr) NodePos() Position    { return b.Pos }
func (b *BinopExpr) NodeEndPos() Position { return b.EndPos }
func (*BinopExpr) NodeType() NodeType     { return BINOP_EXPR }

func (b *IfBranch) NodePos() Position    { return b.Pos }
func (b *IfBranch) NodeEndPos() Position { return b.EndPos }
func (*IfBranch) NodeType() NodeType     { return IF_BRANCH }

func (m *MultiIfExpr) NodePos() Position    { return m.Pos }
func (m *MultiIfExpr) NodeEndPos() Position { return m.EndPos }
func (*MultiIfExpr) NodeType() NodeType     { return MULTI_IF_EXPR }

func (l *LetExpr) NodePos() Position    { return l.Pos }
func (l *LetExpr) NodeEndPos() Position { return l.EndPos }
func (*LetExpr) NodeType() NodeType     { return LET_EXPR }

func (a *CaseAlt) NodePos() Position    { return a.Pos }
func (a *CaseAlt) NodeEndPos() Position { return a.EndPos }
func (*CaseAlt) NodeType() NodeType     { return CASE_ALT }

func (c *CaseExpr) NodePos() Position    { return c.Pos }
func (c *CaseExpr) NodeEndPos() Position { return c.EndPos }
func (*CaseExpr) NodeType() NodeType     { return CASE_EXPR }

func (l *ListExpr) NodePos() Position    { return l.Pos }
func (l *ListExpr) NodeEndPos() Position { return l.EndPos }
func (*ListExpr) NodeType() NodeType     { return LIST_EXPR }

func (r *RangeExpr) NodePos() Position    { return r.Pos }
func (r *RangeExpr) NodeEndPos() Position { return r.EndPos }
func (*RangeExpr) NodeType() NodeType     { return RANGE_EXPR }

func (t *TupleExpr) NodePos() Position    { return t.Pos }
func (t *TupleExpr) NodeEndPos() Position { return t.EndPos }
func (*TupleExpr) NodeType() NodeType     { return TUPLE_EXPR }

func (f *RecordField) NodePos() Position    { return f.Pos }
func (f *RecordField) NodeEndPos() Position { return f.EndPos }
func (*RecordField) NodeType() NodeType     { return RECORD_FIELD }

func (r *RecordExpr) NodePos() Position    { return r.Pos }
func (r *RecordExpr) NodeEndPos() Position { return r.EndPos }
func (*RecordExpr) NodeType() NodeType     { return RECORD_EXPR }

func (r *RecordInsertExpr) NodePos() Position    { return r.Pos }
func (r *RecordInsertExpr) NodeEndPos() Position { return r.EndPos }
func (*RecordInsertExpr) NodeType() NodeType     { return RECORD_INSERT_EXPR }

func (r *RecordRemoveExpr) NodePos() Position    { return r.Pos }
func (r *RecordRemoveExpr) NodeEndPos() Position { return r.EndPos }
func (*RecordRemoveExpr) NodeType() NodeType     { return RECORD_REMOVE_EXPR }

func (r *RecordModifyExpr) NodePos() Position    { return r.Pos }
func (r *RecordModifyExpr) NodeEndPos() Position { return r.EndPos }
func (*RecordModifyExpr) NodeType() NodeType     { return RECORD_MODIFY_EXPR }

func (a *AccessExpr) NodePos() Position    { return a.Pos }
func (a *AccessExpr) NodeEndPos() Position { return a.EndPos }
func (*AccessExpr) NodeType() NodeType     { return ACCESS_EXPR }

func (p *VarPattern) NodePos() Position    { return p.Pos }
func (p *VarPattern) NodeEndPos() Position { return p.EndPos }
func (*VarPattern) NodeType() NodeType     { return VAR_PATTERN }

func (p *WildcardPattern) NodePos() Position    { return p.Pos }
func (p *WildcardPattern) NodeEndPos() Position { return p.EndPos }
func (*WildcardPattern) NodeType() NodeType     { return WILDCARD_PATTERN }

func (p *LiteralPattern) NodePos() Position    { return p.Pos }
func (p *LiteralPattern) NodeEndPos() Position { return p.EndPos }
func (*LiteralPattern) NodeType() NodeType     { return LITERAL_PATTERN }

func (p *CtorPattern) NodePos() Position    { return p.Pos }
func (p *CtorPattern) NodeEndPos() Position { return p.EndPos }
func (*CtorPattern) NodeType() NodeType     { return CTOR_PATTERN }

func (p *TuplePattern) NodePos() Position    { return p.Pos }
func (p *TuplePattern) NodeEndPos() Position { return p.EndPos }
func (*TuplePattern) NodeType() NodeType     { return TUPLE_PATTERN }

func (p *ListPattern) NodePos() Position    { return p.Pos }
func (p *ListPattern) NodeEndPos() Position { return p.EndPos }
func (*ListPattern) NodeType() NodeType     { return LIST_PATTERN }

func (p *RecordPattern) NodePos() Position    { return p.Pos }
func (p *RecordPattern) NodeEndPos() Position { return p.EndPos }
func (*RecordPattern) NodeType() NodeType     { return RECORD_PATTERN }

func (p *AliasPattern) NodePos() Position    { return p.Pos }
func (p *AliasPattern) NodeEndPos() Position { return p.EndPos }
func (*AliasPattern) NodeType() NodeType     { return ALIAS_PATTERN }

func (t *TypeVar) NodePos() Position    { return t.Pos }
func (t *TypeVar) NodeEndPos() Position { return t.EndPos }
func (*TypeVar) NodeType() NodeType     { return TYPE_VAR }

func (t *TypeCon) NodePos() Position    { return t.Pos }
func (t *TypeCon) NodeEndPos() Position { return t.EndPos }
func (*TypeCon) NodeType() NodeType     { return TYPE_CON }

func (t *FuncType) NodePos() Position    { return t.Pos }
func (t *FuncType) NodeEndPos() Position { return t.EndPos }
func (*FuncType) NodeType() NodeType     { return FUNC_TYPE }

func (t *TupleType) NodePos() Position    { return t.Pos }
func (t *TupleType) NodeEndPos() Position { return t.EndPos }
func (*TupleType) NodeType() NodeType     { return TUPLE_TYPE }

func (f *TypeField) NodePos() Position    { return f.Pos }
func (f *TypeField) NodeEndPos() Position { return f.EndPos }
func (*TypeField) NodeType() NodeType     { return TYPE_FIELD }

func (t *RecordType) NodePos() Position    { return t.Pos }
func (t *RecordType) NodeEndPos() Position { return t.EndPos }
func (*RecordType) NodeType() NodeType     { return RECORD_TYPE }

func (d *ValueDef) NodePos() Position    { return d.Pos }
func (d *ValueDef) NodeEndPos() Position { return d.EndPos }
func (*ValueDef) NodeType() NodeType     { return VALUE_DEF }

func (a *TypeAnnotation) NodePos() Position    { return a.Pos }
func (a *TypeAnnotation) NodeEndPos() Position { return a.EndPos }
func (*TypeAnnotation) NodeType() NodeType     { return TYPE_ANNOTATION }

func (f *FixityDecl) NodePos() Position    { return f.Pos }
func (f *FixityDecl) NodeEndPos() Position { return f.EndPos }
func (*FixityDecl) NodeType() NodeType     { return FIXITY_DECL }

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

// setSpan implementations for all AST nodes

func (i *Ident) setSpan(pos, end Position) { i.Pos, i.EndPos = pos, end }

func (l *IntLiteral) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (l *FloatLiteral) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (l *StringLiteral) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (l *CharLiteral) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (l *BoolLiteral) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (l *ShaderLiteral) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (v *VarExpr) setSpan(pos, end Position) { v.Pos, v.EndPos = pos, end }

func (a *AppExpr) setSpan(pos, end Position) { a.Pos, a.EndPos = pos, end }

func (l *LambdaExpr) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (b *BinopExpr) setSpan(pos, end Position) { b.Pos, b.EndPos = pos, end }

func (b *IfBranch) setSpan(pos, end Position) { b.Pos, b.EndPos = pos, end }

func (m *MultiIfExpr) setSpan(pos, end Position) { m.Pos, m.EndPos = pos, end }

func (l *LetExpr) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (a *CaseAlt) setSpan(pos, end Position) { a.Pos, a.EndPos = pos, end }

func (c *CaseExpr) setSpan(pos, end Position) { c.Pos, c.EndPos = pos, end }

func (l *ListExpr) setSpan(pos, end Position) { l.Pos, l.EndPos = pos, end }

func (r *RangeExpr) setSpan(pos, end Position) { r.Pos, r.EndPos = pos, end }

func (t *TupleExpr) setSpan(pos, end Position) { t.Pos, t.EndPos = pos, end }

func (f *RecordField) setSpan(pos, end Position) { f.Pos, f.EndPos = pos, end }

func (r *RecordExpr) setSpan(pos, end Position) { r.Pos, r.EndPos = pos, end }

func (r *RecordInsertExpr) setSpan(pos, end Position) { r.Pos, r.EndPos = pos, end }

func (r *RecordRemoveExpr) setSpan(pos, end Position) { r.Pos, r.EndPos = pos, end }

func (r *RecordModifyExpr) setSpan(pos, end Position) { r.Pos, r.EndPos = pos, end }

func (a *AccessExpr) setSpan(pos, end Position) { a.Pos, a.EndPos = pos, end }

func (p *VarPattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (p *WildcardPattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (p *LiteralPattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (p *CtorPattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (p *TuplePattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (p *ListPattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (p *RecordPattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (p *AliasPattern) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }

func (t *TypeVar) setSpan(pos, end Position) { t.Pos, t.EndPos = pos, end }

func (t *TypeCon) setSpan(pos, end Position) { t.Pos, t.EndPos = pos, end }

func (t *FuncType) setSpan(pos, end Position) { t.Pos, t.EndPos = pos, end }

func (t *TupleType) setSpan(pos, end Position) { t.Pos, t.EndPos = pos, end }

func (f *TypeField) setSpan(pos, end Position) { f.Pos, f.EndPos = pos, end }

func (t *RecordType) setSpan(pos, end Position) { t.Pos, t.EndPos = pos, end }

func (d *ValueDef) setSpan(pos, end Position) { d.Pos, d.EndPos = pos, end }

func (a *TypeAnnotation) setSpan(pos, end Position) { a.Pos, a.EndPos = pos, end }

func (f *FixityDecl) setSpan(pos, end Position) { f.Pos, f.EndPos = pos, end }

func (p *Program) setSpan(pos, end Position) { p.Pos, p.EndPos = pos, end }
