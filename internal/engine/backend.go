package engine

import "github.com/pkg/errors"

// Backend applies primitive shape ops to a concrete tensor type T.
// Implementations only need the three core primitives; a backend that
// additionally implements Preprocessor may rewrite a plan before
// optimization, and one that implements Tiler can execute the Tile ops
// that TilePreprocess emits.
type Backend[T any] interface {
	Reshape(x T, op Reshape) (T, error)
	Transpose(x T, op Transpose) (T, error)
	Broadcast(x T, op Broadcast) (T, error)
}

// Preprocessor is an optional backend capability: an opportunity to
// rewrite ops the target cannot execute directly, invoked once before
// the optimization pass. Backends without it get the identity rewrite.
type Preprocessor interface {
	Preprocess(ops []Op, inputShape Shape) []Op
}

// Tiler is an optional backend capability executing the Tile op.
type Tiler[T any] interface {
	Tile(x T, op Tile) (T, error)
}

// Exec compiles the equation and runs the resulting plan against value
// on backend b: generate, backend preprocess (if any), optimize, then
// apply each op in order to the evolving tensor.
func Exec[T any](b Backend[T], equation string, value T, shape Shape, sizes Sizes) (T, error) {
	ops, err := GenerateOps(equation, shape, sizes)
	if err != nil {
		var zero T
		return zero, err
	}
	if p, ok := any(b).(Preprocessor); ok {
		ops = p.Preprocess(ops, shape)
	}
	ops = Optimize(ops, shape)
	for i, op := range ops {
		value, err = applyOp(b, value, op)
		if err != nil {
			var zero T
			return zero, errors.Wrapf(err, "applying op %d of %q (%s)", i, equation, op)
		}
	}
	return value, nil
}

// applyOp dispatches one op to the backend method matching its variant.
func applyOp[T any](b Backend[T], x T, op Op) (T, error) {
	switch op := op.(type) {
	case Reshape:
		return b.Reshape(x, op)
	case Transpose:
		return b.Transpose(x, op)
	case Broadcast:
		return b.Broadcast(x, op)
	case Tile:
		if tiler, ok := any(b).(Tiler[T]); ok {
			return tiler.Tile(x, op)
		}
		var zero T
		return zero, errors.Errorf("backend %T cannot execute %s", b, op)
	default:
		var zero T
		return zero, errors.Errorf("unknown op %T", op)
	}
}
