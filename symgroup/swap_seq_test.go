package symgroup

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapSeqCompose(t *testing.T) {
	seq := IdentitySwapSeq(4)
	seq.ComposeRight(NewSwap(1, 2))
	seq.ComposeRight(NewSwap(2, 3))
	seq.ComposeRight(NewSwap(3, 4))
	assert.Equal(t, NewOneLine(2, 3, 4, 1), seq.Evaluate())

	seq.ComposeRight(NewSwap(4, 5))
	assert.Equal(t, NewOneLine(2, 3, 4, 5, 1), seq.Evaluate())

	seq.ComposeLeft(NewSwap(4, 5))
	assert.Equal(t, NewOneLine(2, 3, 5, 4, 1), seq.Evaluate())
	assert.Equal(t, "(4 5)(1 2)(2 3)(3 4)(4 5)", seq.String())

	left := NewSwapSeq(NewSwap(1, 2))
	right := NewSwapSeq(NewSwap(2, 3))
	joined := left.Compose(right)
	assert.Equal(t, []Swap{NewSwap(1, 2), NewSwap(2, 3)}, joined.Swaps())
	assert.Equal(t, 1, left.Len())
	assert.Equal(t, 1, right.Len())
	assert.True(t, joined.Equal(SwapSeqFromInvolutions(NewSwap(1, 2), NewSwap(2, 3))))
}

func TestSwapSeqApply(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		seq := RandomSwapSeq(rng, 10, rng.Intn(12))
		p := seq.Evaluate()
		require.NoError(t, p.Validate())
		for v := uint8(1); v <= 12; v++ {
			assert.Equal(t, p.Apply(v), seq.Apply(v))
		}
	}
}

func TestSwapSeqOrder(t *testing.T) {
	assert.Equal(t, uint8(1), NewSwapSeq().Order())
	assert.Equal(t, uint8(7), NewSwapSeq(NewSwap(1, 2), NewSwap(3, 7), NewSwap(4, 5)).Order())
}

func TestSwapSeqIdentity(t *testing.T) {
	assert.True(t, IdentitySwapSeq(5).IsIdentity())
	assert.Equal(t, IdentityOneLine(1), IdentitySwapSeq(5).Evaluate())
	assert.Equal(t, "()", IdentitySwapSeq(5).String())

	seq := NewSwapSeq(NewSwap(2, 4), NewSwap(2, 4))
	assert.True(t, seq.IsIdentity())
	assert.False(t, NewSwapSeq(NewSwap(2, 4)).IsIdentity())
}

func TestSwapSeqEvaluateSpecialCases(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for i := 0; i < 200; i++ {
		seq := RandomSwapSeq(rng, uint8(rng.Intn(10)+2), rng.Intn(5))
		expected := IdentityOneLine(seq.Order())
		for _, s := range seq.Swaps() {
			expected.ComposeSwapRight(s)
		}
		assert.Equal(t, expected, seq.Evaluate(), spew.Sdump(seq.Swaps()))
	}
}

func TestSwapSeqReduceCancels(t *testing.T) {
	seq := NewSwapSeq(NewSwap(1, 2), NewSwap(1, 2))
	seq.Reduce()
	assert.Equal(t, 0, seq.Len())
	assert.True(t, seq.Evaluate().IsIdentity())

	seq = NewSwapSeq(NewSwap(1, 2), NewSwap(3, 4), NewSwap(1, 2))
	seq.Reduce()
	assert.Equal(t, []Swap{NewSwap(3, 4)}, seq.Swaps())

	seq = NewSwapSeq(NewSwap(2, 3), NewSwap(1, 2), NewSwap(1, 2), NewSwap(2, 3))
	seq.Reduce()
	assert.Equal(t, 0, seq.Len())

	seq = NewSwapSeq(NewSwap(2, 2), NewSwap(1, 3))
	seq.Reduce()
	assert.Equal(t, []Swap{NewSwap(1, 3)}, seq.Swaps())
}

func TestSwapSeqReduceDisjoint(t *testing.T) {
	seq := NewSwapSeq(NewSwap(1, 2), NewSwap(3, 4))
	seq.Reduce()
	assert.Equal(t, 2, seq.Len())
	assert.ElementsMatch(t, []Swap{NewSwap(1, 2), NewSwap(3, 4)}, seq.Swaps())
	assert.Equal(t, NewOneLine(2, 1, 4, 3), seq.Evaluate())
}

func TestSwapSeqReduceBlocked(t *testing.T) {
	// (1 3) shares a point with both copies of (1 2), so
	// nothing cancels.
	original := NewSwapSeq(NewSwap(1, 2), NewSwap(1, 3), NewSwap(1, 2))
	seq := original.Clone()
	seq.Reduce()
	assert.True(t, original.Equal(seq))
}

func TestSwapSeqReduceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for i := 0; i < 500; i++ {
		n := uint8(rng.Intn(7) + 2)
		seq := RandomSwapSeq(rng, n, rng.Intn(30))

		reduced := seq.Clone()
		reduced.Reduce()
		dump := spew.Sdump(seq.Swaps())

		assert.True(t, Equal(seq.Evaluate(), reduced.Evaluate()), dump)
		assert.LessOrEqual(t, reduced.Len(), seq.Len(), dump)
		assert.GreaterOrEqual(t, reduced.Len(), TranspositionCount(seq), dump)
		assert.Equal(t, seq.Len()%2, reduced.Len()%2, dump)

		again := reduced.Clone()
		again.Reduce()
		assert.True(t, reduced.Equal(again), dump)
	}
}

func TestSwapSeqJSON(t *testing.T) {
	seq := NewSwapSeq(NewSwap(1, 2), NewSwap(4, 3))
	data, err := json.Marshal(seq)
	require.NoError(t, err)
	assert.Equal(t, "[[1,2],[3,4]]", string(data))

	var decoded SwapSeq
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, seq.Equal(&decoded))

	assert.Error(t, json.Unmarshal([]byte("[[0,1]]"), &decoded))
}
