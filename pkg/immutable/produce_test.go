package immutable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zuriscript/signal-immutability/pkg/value"
)

func TestProduce_AppliesMutation(t *testing.T) {
	current := value.MustOf(map[string]any{"count": 0})

	next, err := Produce(current, func(draft value.Value) error {
		return draft.(*value.Object).Set("count", value.Int(1))
	})
	require.NoError(t, err)

	count, _ := next.(*value.Object).Get("count")
	assert.Equal(t, value.Int(1), count)
	assert.False(t, value.Identical(current, next), "next is a distinct reference")

	// The current value is untouched
	orig, _ := current.(*value.Object).Get("count")
	assert.Equal(t, value.Int(0), orig)
}

func TestProduce_ErrorLeavesCurrentUntouched(t *testing.T) {
	boom := errors.New("boom")
	current := value.MustOf(map[string]any{"count": 0})

	next, err := Produce(current, func(draft value.Value) error {
		// Half-applied writes on the draft must not escape
		if err := draft.(*value.Object).Set("count", value.Int(99)); err != nil {
			return err
		}
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, next)

	count, _ := current.(*value.Object).Get("count")
	assert.Equal(t, value.Int(0), count)
}

func TestProduce_RecoversMutationPanic(t *testing.T) {
	current := value.MustOf(map[string]any{"n": 1})

	next, err := Produce(current, func(value.Value) error {
		panic("unexpected")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMutationPanic)
	assert.Contains(t, err.Error(), "unexpected")
	assert.Nil(t, next)
}

func TestProduce_FreezesResultWhenEnabled(t *testing.T) {
	current := value.MustOf(map[string]any{"count": 0})

	next, err := Produce(current, func(draft value.Value) error {
		return draft.(*value.Object).Set("count", value.Int(1))
	}, WithDeepFreezing(true))
	require.NoError(t, err)

	assert.True(t, next.Frozen())
	assert.True(t, value.IsFrozen(next.(*value.Object).Set("count", value.Int(2))))

	// The input stays unfrozen
	assert.False(t, current.Frozen())
}

func TestProduce_CustomProducer(t *testing.T) {
	current := value.MustOf(map[string]any{"n": 1})
	replacement := value.MustOf(map[string]any{"n": 42})

	var sawCurrent value.Value
	producer := func(cur value.Value, mutate MutateFunc) (value.Value, error) {
		sawCurrent = cur
		return replacement, nil
	}

	next, err := Produce(current, nil, WithProducer(producer))
	require.NoError(t, err)
	assert.True(t, value.Identical(replacement, next), "producer result used verbatim")
	assert.True(t, value.Identical(current, sawCurrent))
}

func TestProduce_CustomProducerErrorPropagates(t *testing.T) {
	fail := errors.New("strategy refused")
	producer := func(value.Value, MutateFunc) (value.Value, error) {
		return nil, fail
	}

	_, err := Produce(value.NewObject(), nil, WithProducer(producer))
	require.Error(t, err)
	assert.ErrorIs(t, err, fail)
}

func TestProduce_SerializeModeDraft(t *testing.T) {
	fn := value.NewFunc("f", 0, nil)
	current := value.NewObject()
	require.NoError(t, current.Set("n", value.Int(1)))
	require.NoError(t, current.Set("callable", fn))

	next, err := Produce(current, func(draft value.Value) error {
		return draft.(*value.Object).Set("n", value.Float(2))
	}, WithCloneMode(ModeSerialize))
	require.NoError(t, err)

	_, ok := next.(*value.Object).Get("callable")
	assert.False(t, ok, "serialize drafts inherit the lossy clone semantics")

	// The original still carries the callable
	_, ok = current.Get("callable")
	assert.True(t, ok)
}

func TestProduce_MutationOnNestedDraft(t *testing.T) {
	current := value.MustOf(map[string]any{
		"user": map[string]any{"visits": 1},
	})

	next, err := Produce(current, func(draft value.Value) error {
		return draft.(*value.Object).SetPath("user.visits", value.Int(2))
	})
	require.NoError(t, err)

	visits, _ := next.(*value.Object).GetPath("user.visits")
	assert.Equal(t, value.Int(2), visits)
	origVisits, _ := current.(*value.Object).GetPath("user.visits")
	assert.Equal(t, value.Int(1), origVisits)
}
