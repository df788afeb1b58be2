// interp.go — the eerolang tree-walking evaluator.
//
// An Interpreter owns the mutable program state: a flat variable namespace
// (unique names, last write wins, never shrinks) and the fixed builtin table
// installed once at construction. Run walks a parsed statement sequence in
// source order without ever mutating it; the only valid top-level forms are
// assignment and a bare builtin call.
//
// Every failure is a *RuntimeError pointing at the offending node. The first
// error stops execution; output already written by earlier statements stays
// written.
package eerolang

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// BuiltinFn is the implementation signature of a native function. Args are
// fully evaluated, left to right. A builtin with no result returns Nothing;
// such a call is legal only in statement position. Errors are plain Go
// errors; the evaluator attaches the call-site position.
type BuiltinFn func(ip *Interpreter, args []Value) (Value, error)

// RuntimeError represents an execution-time failure with a source location.
type RuntimeError struct {
	Line int
	Col  int
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RUNTIME ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func rtErr(pos Pos, format string, args ...any) error {
	return &RuntimeError{Line: pos.Line, Col: pos.Col, Msg: fmt.Sprintf(format, args...)}
}

// Interpreter is the entry point for executing eerolang programs.
type Interpreter struct {
	// Stdout receives everything print writes. Defaults to os.Stdout;
	// tests and embedders may swap it before running.
	Stdout io.Writer

	vars     map[string]Value
	builtins map[string]BuiltinFn
}

// NewInterpreter constructs an engine with the core builtins installed and an
// empty variable namespace.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		Stdout:   os.Stdout,
		vars:     make(map[string]Value),
		builtins: make(map[string]BuiltinFn),
	}
	registerCoreBuiltins(ip)
	return ip
}

// RegisterBuiltin installs a native function under name. Script code cannot
// define or shadow builtins; this is a host-side hook only.
func (ip *Interpreter) RegisterBuiltin(name string, fn BuiltinFn) {
	ip.builtins[name] = fn
}

// Get returns the current binding of a variable, if any.
func (ip *Interpreter) Get(name string) (Value, bool) {
	v, ok := ip.vars[name]
	return v, ok
}

// Run executes the statement sequence in order. The sequence is treated as
// read-only input; Run never modifies it.
func (ip *Interpreter) Run(block []Stmt) error {
	for _, stmt := range block {
		switch s := stmt.(type) {
		case *AssignStmt:
			slog.Debug("assigning variable", "name", s.Name)
			v, err := ip.compute(s.Expr)
			if err != nil {
				return err
			}
			ip.vars[s.Name] = v
		case *CallExpr:
			slog.Debug("calling function", "name", s.Name)
			// Statement position: a Nothing result is fine here.
			if _, err := ip.call(s); err != nil {
				return err
			}
		default:
			return rtErr(stmt.NodePos(), "statement not allowed at top level")
		}
	}
	return nil
}

// RunSource scans, parses and executes src against this interpreter. Errors
// from any stage come back wrapped with a caret snippet; srcName labels the
// snippet header (e.g. a file path).
func (ip *Interpreter) RunSource(srcName, src string) error {
	block, err := ParseSource(src)
	if err != nil {
		return WrapErrorWithName(err, srcName, src)
	}
	if err := ip.Run(block); err != nil {
		return WrapErrorWithName(err, srcName, src)
	}
	return nil
}

// compute evaluates an expression to a value. A call whose builtin produced
// no value is an error here: Nothing never flows into an expression.
func (ip *Interpreter) compute(expr Expr) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Val, nil
	case *VarExpr:
		v, ok := ip.vars[e.Name]
		if !ok {
			return Value{}, rtErr(e.Pos, "undefined variable: %s", e.Name)
		}
		return v, nil
	case *ListExpr:
		elems := make([]Value, 0, len(e.Elems))
		for _, el := range e.Elems {
			v, err := ip.compute(el)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return List(elems), nil
	case *CallExpr:
		v, err := ip.call(e)
		if err != nil {
			return Value{}, err
		}
		if v.Tag == TagNothing {
			return Value{}, rtErr(e.Pos, "function %q used as value produced no value", e.Name)
		}
		return v, nil
	case *BinaryExpr:
		return ip.binaryOp(e)
	default:
		return Value{}, rtErr(expr.NodePos(), "unsupported expression")
	}
}

// call resolves a builtin, evaluates the arguments left to right and invokes
// it. The result may be Nothing; callers decide whether that is acceptable.
func (ip *Interpreter) call(e *CallExpr) (Value, error) {
	fn, ok := ip.builtins[e.Name]
	if !ok {
		return Value{}, rtErr(e.Pos, "undefined function: %s", e.Name)
	}
	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := ip.compute(a)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}
	v, err := fn(ip, args)
	if err != nil {
		if _, ok := err.(*RuntimeError); ok {
			return Value{}, err
		}
		return Value{}, rtErr(e.Pos, "%s: %s", e.Name, err)
	}
	return v, nil
}

// binaryOp applies the operand-type ladder:
//  1. Str + Str concatenates (wins over every numeric rule).
//  2. Int op Int computes in int64; division truncates toward zero and a zero
//     divisor is an error.
//  3. Otherwise Int operands promote to Num and the operation computes in
//     float64, where division by zero follows IEEE semantics (±Inf, NaN).
//  4. Anything else is an unsupported operand combination.
func (ip *Interpreter) binaryOp(e *BinaryExpr) (Value, error) {
	left, err := ip.compute(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := ip.compute(e.Right)
	if err != nil {
		return Value{}, err
	}

	if left.Tag == TagStr && right.Tag == TagStr && e.Op == OpAdd {
		return Str(left.AsStr() + right.AsStr()), nil
	}

	if left.Tag == TagInt && right.Tag == TagInt {
		l, r := left.AsInt(), right.AsInt()
		switch e.Op {
		case OpAdd:
			return Int(l + r), nil
		case OpSub:
			return Int(l - r), nil
		case OpMul:
			return Int(l * r), nil
		case OpDiv:
			if r == 0 {
				return Value{}, rtErr(e.Pos, "integer division by zero")
			}
			return Int(l / r), nil
		}
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if lok && rok {
		switch e.Op {
		case OpAdd:
			return Num(lf + rf), nil
		case OpSub:
			return Num(lf - rf), nil
		case OpMul:
			return Num(lf * rf), nil
		case OpDiv:
			return Num(lf / rf), nil
		}
	}

	return Value{}, rtErr(e.Pos, "unsupported operand types for %s: %s and %s",
		e.Op, left.Tag, right.Tag)
}

// asFloat widens Int and Num operands to float64 for mixed arithmetic.
func asFloat(v Value) (float64, bool) {
	switch v.Tag {
	case TagInt:
		return float64(v.AsInt()), true
	case TagNum:
		return v.AsNum(), true
	default:
		return 0, false
	}
}
