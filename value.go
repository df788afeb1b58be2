// value.go — the eerolang runtime value model.
package eerolang

import (
	"fmt"
	"strconv"
)

// ValueTag enumerates all runtime kinds a Value may hold.
// The tag determines which type Value.Data holds (see Value docs).
type ValueTag int

const (
	// TagNothing marks the absence of a value. It is never observable from
	// script code: builtins that produce nothing may only be called in
	// statement position, and the evaluator rejects Nothing everywhere else.
	TagNothing ValueTag = iota
	TagInt               // int64
	TagNum               // float64
	TagStr               // string
	TagList              // *ListObject
)

func (t ValueTag) String() string {
	switch t {
	case TagNothing:
		return "nothing"
	case TagInt:
		return "integer"
	case TagNum:
		return "float"
	case TagStr:
		return "string"
	case TagList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the universal runtime carrier used by the interpreter.
//
// Invariants:
//   - When Tag==TagNothing, Data is nil.
//   - When Tag==TagList, Data is *ListObject; the pointer is shared between
//     every binding of the same list, so two variables assigned the same list
//     alias one underlying sequence.
//
// Integers, floats and strings are plain Go values and copy freely; Go
// strings are immutable, which gives string values the shared-text semantics
// for free.
type Value struct {
	Tag  ValueTag
	Data any
}

// Nothing is the singleton no-value result.
var Nothing = Value{Tag: TagNothing}

// Primitive constructors for convenience.
func Int(n int64) Value   { return Value{Tag: TagInt, Data: n} }
func Num(f float64) Value { return Value{Tag: TagNum, Data: f} }
func Str(s string) Value  { return Value{Tag: TagStr, Data: s} }

// ListObject is the shared backing store of a list value. Everyone holding
// the same *ListObject sees the same elements.
type ListObject struct {
	Elems []Value
}

// List wraps a fresh element slice into a list value. The slice is adopted,
// not copied.
func List(elems []Value) Value {
	return Value{Tag: TagList, Data: &ListObject{Elems: elems}}
}

// AsInt returns the int64 payload; valid only when Tag==TagInt.
func (v Value) AsInt() int64 { return v.Data.(int64) }

// AsNum returns the float64 payload; valid only when Tag==TagNum.
func (v Value) AsNum() float64 { return v.Data.(float64) }

// AsStr returns the string payload; valid only when Tag==TagStr.
func (v Value) AsStr() string { return v.Data.(string) }

// AsList returns the shared list object; valid only when Tag==TagList.
func (v Value) AsList() *ListObject { return v.Data.(*ListObject) }

// String renders a short debug representation. User-facing rendering is
// FormatValue in printer.go.
func (v Value) String() string {
	switch v.Tag {
	case TagNothing:
		return "<nothing>"
	case TagInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case TagNum:
		return strconv.FormatFloat(v.AsNum(), 'g', -1, 64)
	case TagStr:
		return fmt.Sprintf("%q", v.AsStr())
	case TagList:
		return fmt.Sprintf("<list len=%d>", len(v.AsList().Elems))
	default:
		return "<unknown>"
	}
}
