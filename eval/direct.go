package eval

import (
	"github.com/spiddylang/spiddy/debruijn"
	"github.com/spiddylang/spiddy/internal/arena"
)

// Eval evaluates expr under env directly and recursively, allocating every
// intermediate value into heap.
//
// Applying a non-closure or adding a non-integer are not recoverable
// errors: they indicate an ill-typed program reached the evaluator, which
// cannot happen for any program produced by package debruijn from a
// well-scoped parse, so both panic rather than returning an error.
func Eval(heap *Heap, exprs *arena.Arena[debruijn.Expr], env Env, expr arena.Pointer[debruijn.Expr]) arena.Pointer[Value] {
	node := expr.In(exprs)
	switch node.Kind {
	case debruijn.Var:
		return env[len(env)-node.Index-1]

	case debruijn.U64:
		return heap.New(Value{Kind: U64, N: node.N})

	case debruijn.AddU64:
		l := requireU64(heap, Eval(heap, exprs, env, node.Left))
		r := requireU64(heap, Eval(heap, exprs, env, node.Right))
		return heap.New(Value{Kind: U64, N: l + r})

	case debruijn.Lam:
		return heap.New(Value{Kind: Closure, Env: env.snapshot(), Body: node.Body})

	case debruijn.App:
		fn := requireClosure(heap, Eval(heap, exprs, env, node.Left))
		arg := Eval(heap, exprs, env, node.Right)
		return Eval(heap, exprs, fn.Env.push(arg), fn.Body)

	default:
		panic("eval: unreachable debruijn.Kind")
	}
}
