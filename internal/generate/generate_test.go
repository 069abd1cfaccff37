package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spiddylang/spiddy/ast"
	"github.com/spiddylang/spiddy/internal/generate"
	"github.com/spiddylang/spiddy/pretty"
)

func TestNewSameSeedSameIdentPool(t *testing.T) {
	g1 := generate.New(42)
	g2 := generate.New(42)

	var b1, b2 ast.Builder
	e1 := g1.Expr(&b1, 4)
	e2 := g2.Expr(&b2, 4)

	assert.Equal(t, pretty.Syntax(&b1.Arena, e1), pretty.Syntax(&b2.Arena, e2))
}

func TestExprDifferentSeedsLikelyDiffer(t *testing.T) {
	g1 := generate.New(1)
	g2 := generate.New(2)

	var b1, b2 ast.Builder
	e1 := g1.Expr(&b1, 4)
	e2 := g2.Expr(&b2, 4)

	assert.NotEqual(t, pretty.Syntax(&b1.Arena, e1), pretty.Syntax(&b2.Arena, e2))
}

func TestExprZeroSizeIsIdent(t *testing.T) {
	g := generate.New(7)
	var b ast.Builder
	e := g.Expr(&b, 0)
	assert.Equal(t, ast.Ident, e.In(&b.Arena).Kind)
}

func TestExprProducesWellFormedTree(t *testing.T) {
	g := generate.New(99)
	var b ast.Builder
	e := g.Expr(&b, 6)

	// Rendering must not panic and must produce non-empty text for every
	// node in the tree.
	assert.NotEmpty(t, pretty.Syntax(&b.Arena, e))
}
