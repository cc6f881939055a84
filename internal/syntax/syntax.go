// Package syntax defines the read-only syntax-tree contract this layer
// consumes from an external lexer/parser (spec.md §6): the node kinds
// needed to build the symbol graph, with no parsing behavior of its own.
// A real front end hands these in; tests and the reference checker in
// internal/checker construct them directly, the way resolver_test.go in
// this codebase's teacher builds HIR fixtures by hand rather than parsing
// source text.
package syntax

import "github.com/orizon-lang/svsema/internal/position"

// Node is the minimal capability every syntax node has: a source span.
type Node interface {
	Span() position.Span
}

// Item is a node that can appear in a scope body: a declaration, an
// import, or a generate/instance construct.
type Item interface {
	Node
	itemNode()
}

// Statement is a procedural-statement syntax node.
type Statement interface {
	Node
	statementNode()
}

// Expression is an expression syntax node.
type Expression interface {
	Node
	expressionNode()
}

// DataType is a data-type syntax node.
type DataType interface {
	Node
	dataTypeNode()
}

// base carries the source span shared by every concrete node below.
type base struct {
	SpanValue position.Span
}

func (b base) Span() position.Span { return b.SpanValue }

// ---- Expressions ----

// Identifier is a simple name reference.
type Identifier struct {
	base

	Name string
}

func (*Identifier) expressionNode() {}

// IntegerLiteral is an integral constant literal.
type IntegerLiteral struct {
	base

	Value  int64
	Width  int
	Signed bool
}

func (*IntegerLiteral) expressionNode() {}

// BinaryExpression is a two-operand expression, e.g. "i < 3".
type BinaryExpression struct {
	base

	Op    string
	Left  Expression
	Right Expression
}

func (*BinaryExpression) expressionNode() {}

// UnaryExpression is a single-operand expression, e.g. "i++" or "-x".
type UnaryExpression struct {
	base

	Op      string
	Operand Expression
}

func (*UnaryExpression) expressionNode() {}

// ---- Data types ----

// NamedType refers to a data type by name (builtin keyword or user type).
type NamedType struct {
	base

	Name string
}

func (*NamedType) dataTypeNode() {}

// ---- Statements ----

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	base

	Expression Expression
}

func (*ExpressionStatement) statementNode() {}

// BlockStatement is a sequence of statements, e.g. a begin/end block.
type BlockStatement struct {
	base

	Statements []Statement
}

func (*BlockStatement) statementNode() {}

// ForLoopStatement is an ordinary (non-generate) procedural for loop.
type ForLoopStatement struct {
	base

	InitName string
	Init     Expression
	Cond     Expression
	Step     Expression
	Body     Statement
}

func (*ForLoopStatement) statementNode() {}

// ---- Declarations ----

// VariableDeclarator names one declared variable or parameter within a
// possibly-shared type/initializer declaration.
type VariableDeclarator struct {
	base

	Name        string
	Initializer Expression
}

// DesignElementKind distinguishes module/interface/program declarations,
// which share the same declaration shape.
type DesignElementKind int

const (
	ElementModule DesignElementKind = iota
	ElementInterface
	ElementProgram
)

func (k DesignElementKind) String() string {
	switch k {
	case ElementModule:
		return "module"
	case ElementInterface:
		return "interface"
	case ElementProgram:
		return "program"
	default:
		return "unknown"
	}
}

// ParameterDeclaration is one `parameter`/`localparam` declaration,
// possibly introducing several declarators (e.g. "parameter int A = 1, B = 2;").
type ParameterDeclaration struct {
	base

	TypeSyntax  DataType
	Declarators []*VariableDeclarator
	IsLocalParam bool
}

func (*ParameterDeclaration) itemNode() {}

// DataDeclaration declares one or more ordinary variables.
type DataDeclaration struct {
	base

	TypeSyntax  DataType
	Declarators []*VariableDeclarator
}

func (*DataDeclaration) itemNode() {}

// FormalArgument is one argument of a function/task declaration.
type FormalArgument struct {
	base

	Name       string
	Direction  string // "in", "out", "inout", "ref"
	TypeSyntax DataType
}

// FunctionDeclaration declares a function or task.
type FunctionDeclaration struct {
	base

	Name       string
	IsTask     bool
	ReturnType DataType
	Arguments  []*FormalArgument
	Body       []Statement
}

func (*FunctionDeclaration) itemNode() {}

// ModuleDeclaration declares a module, interface, or program.
type ModuleDeclaration struct {
	base

	Name          string
	ElementKind   DesignElementKind
	PortParams    []*ParameterDeclaration
	Body          []Item
}

func (*ModuleDeclaration) itemNode() {}

// TypedefDeclaration is `typedef <type> <name>;`.
type TypedefDeclaration struct {
	base

	Name       string
	TypeSyntax DataType
}

func (*TypedefDeclaration) itemNode() {}

// ProceduralBlockDeclaration is an initial/always/always_comb/always_ff/
// always_latch/final block within a module body.
type ProceduralBlockDeclaration struct {
	base

	Kind  string
	Label string
	Body  Statement
}

func (*ProceduralBlockDeclaration) itemNode() {}

// ParamAssignment is one named parameter-value assignment at an
// instantiation site, e.g. ".P(7)".
type ParamAssignment struct {
	Name string
	Expr Expression
}

// InstanceRange is an array-instantiation range, e.g. "[3:0]".
type InstanceRange struct {
	Left  int
	Right int
}

// Count returns the number of elements the range spans.
func (r InstanceRange) Count() int {
	if r.Left >= r.Right {
		return r.Left - r.Right + 1
	}

	return r.Right - r.Left + 1
}

// IndexAt returns the element index for the i-th instance in declaration order.
func (r InstanceRange) IndexAt(i int) int {
	if r.Left >= r.Right {
		return r.Left - i
	}

	return r.Left + i
}

// HierarchicalInstance is a single named instance entry, optionally an array.
type HierarchicalInstance struct {
	base

	Name  string
	Array *InstanceRange
}

// HierarchyInstantiation instantiates a module/interface/program definition,
// sharing one parameter-assignment list across one or more instance entries.
type HierarchyInstantiation struct {
	base

	DefinitionName string
	Parameters     []*ParamAssignment
	Instances      []*HierarchicalInstance
}

func (*HierarchyInstantiation) itemNode() {}

// ExplicitImport is `import pkg::name;`.
type ExplicitImport struct {
	base

	PackageName string
	ImportName  string
}

func (*ExplicitImport) itemNode() {}

// WildcardImport is `import pkg::*;`.
type WildcardImport struct {
	base

	PackageName string
}

func (*WildcardImport) itemNode() {}

// PackageDeclaration declares a SystemVerilog package. Version is an
// optional semver string (empty if the package declares no version); the
// package table consults it only when a lookup supplies a version
// constraint and more than one package of the same name is registered.
// Import resolution supplies no constraint.
type PackageDeclaration struct {
	base

	Name    string
	Version string
	Body    []Item
}

func (*PackageDeclaration) itemNode() {}

// CompilationUnit is the top-level syntax handed to the root scope: every
// top-level item the parser produced for one source file's worth of text.
type CompilationUnit struct {
	base

	Items []Item
}

// IfGenerate is a conditional generate construct.
type IfGenerate struct {
	base

	Condition Expression
	Label     string
	Then      []Item
	Else      []Item // nil if there is no else-branch.
	HasElse   bool
}

func (*IfGenerate) itemNode() {}

// LoopGenerate is a `for` generate construct.
type LoopGenerate struct {
	base

	GenvarName string
	Init       Expression
	Cond       Expression
	Step       Expression
	Label      string
	Body       []Item
}

func (*LoopGenerate) itemNode() {}
