// Package eval runs lowered ([debruijn.Expr]) programs to a [Value], via
// two equivalent strategies: [Eval], a direct recursive evaluator, and
// [EvalLoop], an iterative CEK machine with an explicit continuation
// stack. Both allocate every value into a caller-supplied arena-backed
// heap rather than relying on Go's own stack or GC to model the language's
// runtime.
package eval

import (
	"github.com/spiddylang/spiddy/debruijn"
	"github.com/spiddylang/spiddy/internal/arena"
)

// Kind distinguishes the variants of [Value].
type Kind uint8

const (
	// U64 is an unsigned 64-bit integer.
	U64 Kind = iota
	// Closure is a function value: the body it will run and a snapshot of
	// the environment it closed over.
	Closure
)

// Value is a runtime value, allocated in a [Heap].
type Value struct {
	Kind Kind

	N uint64 // U64

	Env  Env                 // Closure
	Body arena.Pointer[debruijn.Expr] // Closure
}

// Env is an ordered sequence of value references: Env[len(Env)-n-1] is
// what a [debruijn.Var] with index n resolves to.
type Env []arena.Pointer[Value]

// push returns a new Env with v bound as the new innermost (rightmost)
// entry, without mutating env's backing array.
func (env Env) push(v arena.Pointer[Value]) Env {
	next := make(Env, len(env)+1)
	copy(next, env)
	next[len(env)] = v
	return next
}

// snapshot returns an independent copy of env, used when a [debruijn.Lam]
// closes over the environment it was evaluated in: later pushes to the
// original env must not be visible through the closure.
func (env Env) snapshot() Env {
	next := make(Env, len(env))
	copy(next, env)
	return next
}

// Heap is where every [Value] produced during evaluation lives.
type Heap = arena.Arena[Value]

func requireU64(heap *Heap, p arena.Pointer[Value]) uint64 {
	v := p.In(heap)
	if v.Kind != U64 {
		panic("eval: AddU64 applied to a non-integer value")
	}
	return v.N
}

func requireClosure(heap *Heap, p arena.Pointer[Value]) *Value {
	v := p.In(heap)
	if v.Kind != Closure {
		panic("eval: application of a non-function value")
	}
	return v
}
