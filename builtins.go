package eerolang

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ---- core built-ins ----------------------------------------------------

func registerCoreBuiltins(ip *Interpreter) {
	ip.RegisterBuiltin("print", builtinPrint)
	ip.RegisterBuiltin("readfile", builtinReadfile)
	ip.RegisterBuiltin("split", builtinSplit)
	ip.RegisterBuiltin("len", builtinLen)
}

// print(v, ...) — renders each argument with FormatValue, space-separated,
// newline-terminated, to ip.Stdout. Produces no value.
func builtinPrint(ip *Interpreter, args []Value) (Value, error) {
	if len(args) < 1 {
		return Value{}, errors.New("expected at least 1 argument")
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, FormatValue(a))
	}
	if _, err := fmt.Fprintln(ip.Stdout, strings.Join(parts, " ")); err != nil {
		return Value{}, fmt.Errorf("write failed: %w", err)
	}
	return Nothing, nil
}

// readfile(path: Str) -> Str — whole file as text, surrounding whitespace
// trimmed.
func builtinReadfile(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != TagStr {
		return Value{}, fmt.Errorf("expected (string), got %s", describeArgs(args))
	}
	data, err := os.ReadFile(args[0].AsStr())
	if err != nil {
		return Value{}, fmt.Errorf("cannot read %s: %w", args[0].AsStr(), err)
	}
	return Str(strings.TrimSpace(string(data))), nil
}

// split(s: Str, delim: Str) -> List of Str — splits on every occurrence of
// the delimiter; adjacent delimiters contribute empty strings.
func builtinSplit(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 2 || args[0].Tag != TagStr || args[1].Tag != TagStr {
		return Value{}, fmt.Errorf("expected (string, string), got %s", describeArgs(args))
	}
	parts := strings.Split(args[0].AsStr(), args[1].AsStr())
	elems := make([]Value, 0, len(parts))
	for _, part := range parts {
		elems = append(elems, Str(part))
	}
	return List(elems), nil
}

// len(v: Str | List) -> Int — byte length of a string or element count of a
// list.
func builtinLen(_ *Interpreter, args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	switch args[0].Tag {
	case TagStr:
		return Int(int64(len(args[0].AsStr()))), nil
	case TagList:
		return Int(int64(len(args[0].AsList().Elems))), nil
	default:
		return Value{}, fmt.Errorf("expected (string) or (list), got %s", describeArgs(args))
	}
}

// describeArgs renders argument tags for mismatch messages: "(integer, list)".
func describeArgs(args []Value) string {
	tags := make([]string, 0, len(args))
	for _, a := range args {
		tags = append(tags, a.Tag.String())
	}
	return "(" + strings.Join(tags, ", ") + ")"
}
