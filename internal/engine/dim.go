package engine

import (
	"fmt"
	"strings"
)

// Dim is the size of one tensor axis. It is either a Known concrete
// integer or an opaque Symbolic handle whose value is only available at
// execution time. The engine performs simple arithmetic on dims without
// needing to know which kind it has.
//
// Every Dim whose Static reports ok=false must implement Symbolic; the
// arithmetic functions require one operand to carry the operation when
// the result cannot be folded, and panic on a dynamic dim that
// implements neither.
type Dim interface {
	// Static reports the concrete size of the dimension, with ok=false
	// when the size is symbolic and not known at compile time.
	Static() (size int, ok bool)
	String() string
}

// Known is a statically known dimension size.
type Known int

// Static reports the concrete size. Always ok for Known.
func (k Known) Static() (int, bool) { return int(k), true }

func (k Known) String() string { return fmt.Sprintf("%d", int(k)) }

// Symbolic is an opaque dynamic dimension size. Implementations supply
// the arithmetic the engine needs, in both operand orders: Mul is
// "this * other" while RMul is "other * this", mirroring the value-first
// and value-second forms. Every method must be side-effect-free.
type Symbolic interface {
	Dim
	Add(other Dim) Dim
	RAdd(other Dim) Dim
	Sub(other Dim) Dim
	RSub(other Dim) Dim
	Mul(other Dim) Dim
	RMul(other Dim) Dim
	FloorDiv(other Dim) Dim
	RFloorDiv(other Dim) Dim
	Mod(other Dim) Dim
	RMod(other Dim) Dim
}

// Add returns a+b, folding to Known when both operands are known.
func Add(a, b Dim) Dim {
	if x, ok := a.Static(); ok {
		if y, ok := b.Static(); ok {
			return Known(x + y)
		}
	}
	if s, ok := a.(Symbolic); ok {
		return s.Add(b)
	}
	return b.(Symbolic).RAdd(a)
}

// Sub returns a-b, folding to Known when both operands are known.
func Sub(a, b Dim) Dim {
	if x, ok := a.Static(); ok {
		if y, ok := b.Static(); ok {
			return Known(x - y)
		}
	}
	if s, ok := a.(Symbolic); ok {
		return s.Sub(b)
	}
	return b.(Symbolic).RSub(a)
}

// Mul returns a*b, folding to Known when both operands are known.
func Mul(a, b Dim) Dim {
	if x, ok := a.Static(); ok {
		if y, ok := b.Static(); ok {
			return Known(x * y)
		}
	}
	if s, ok := a.(Symbolic); ok {
		return s.Mul(b)
	}
	return b.(Symbolic).RMul(a)
}

// FloorDiv returns a//b, folding to Known when both operands are known.
func FloorDiv(a, b Dim) Dim {
	if x, ok := a.Static(); ok {
		if y, ok := b.Static(); ok {
			return Known(x / y)
		}
	}
	if s, ok := a.(Symbolic); ok {
		return s.FloorDiv(b)
	}
	return b.(Symbolic).RFloorDiv(a)
}

// Mod returns a%b, folding to Known when both operands are known.
func Mod(a, b Dim) Dim {
	if x, ok := a.Static(); ok {
		if y, ok := b.Static(); ok {
			return Known(x % y)
		}
	}
	if s, ok := a.(Symbolic); ok {
		return s.Mod(b)
	}
	return b.(Symbolic).RMod(a)
}

// Shape is an ordered sequence of dims, one per physical axis. A shape
// may mix Known and Symbolic components.
type Shape []Dim

// ShapeOf builds a fully known shape from integer sizes.
func ShapeOf(sizes ...int) Shape {
	s := make(Shape, len(sizes))
	for i, n := range sizes {
		s[i] = Known(n)
	}
	return s
}

// Static reports the shape as plain ints, with ok=false if any
// component is symbolic.
func (s Shape) Static() ([]int, bool) {
	sizes := make([]int, len(s))
	for i, d := range s {
		n, ok := d.Static()
		if !ok {
			return nil, false
		}
		sizes[i] = n
	}
	return sizes, true
}

// Clone returns a copy of the shape. Dims themselves are immutable and
// are shared.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Sizes maps index letters to explicitly specified dimension sizes,
// used where sizes cannot be inferred from the input shape.
type Sizes map[rune]Dim
