// ast.go — typed AST nodes produced by the parser.
package eerolang

// Pos is a source position: 1-based line, 0-based column.
type Pos struct {
	Line int
	Col  int
}

// Node is implemented by every AST node.
type Node interface {
	NodePos() Pos
}

// Expr is an expression node: evaluating it yields a value.
type Expr interface {
	Node
	exprNode() // sealed marker
}

// Stmt is a top-level statement node.
type Stmt interface {
	Node
	stmtNode() // sealed marker
}

// Op is a binary arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Precedence returns the binding rank: additive 0, multiplicative 1.
func (o Op) Precedence() int {
	switch o {
	case OpMul, OpDiv:
		return 1
	default:
		return 0
	}
}

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// AssignStmt binds the result of Expr to Name: `name = expr`.
type AssignStmt struct {
	Pos  Pos
	Name string
	Expr Expr
}

func (n *AssignStmt) NodePos() Pos { return n.Pos }
func (n *AssignStmt) stmtNode()    {}

// CallExpr invokes a builtin: `name(arg, ...)`. It is the one node valid
// both as an expression and as a bare statement.
type CallExpr struct {
	Pos  Pos
	Name string
	Args []Expr
}

func (n *CallExpr) NodePos() Pos { return n.Pos }
func (n *CallExpr) exprNode()    {}
func (n *CallExpr) stmtNode()    {}

// BinaryExpr applies Op to two operand expressions.
type BinaryExpr struct {
	Pos   Pos
	Op    Op
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) NodePos() Pos { return n.Pos }
func (n *BinaryExpr) exprNode()    {}

// ListExpr is a bracketed list literal; elements evaluate left to right.
type ListExpr struct {
	Pos   Pos
	Elems []Expr
}

func (n *ListExpr) NodePos() Pos { return n.Pos }
func (n *ListExpr) exprNode()    {}

// LiteralExpr carries a value scanned by the lexer.
type LiteralExpr struct {
	Pos Pos
	Val Value
}

func (n *LiteralExpr) NodePos() Pos { return n.Pos }
func (n *LiteralExpr) exprNode()    {}

// VarExpr reads a variable.
type VarExpr struct {
	Pos  Pos
	Name string
}

func (n *VarExpr) NodePos() Pos { return n.Pos }
func (n *VarExpr) exprNode()    {}
