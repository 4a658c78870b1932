package signal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive_ComputesInitialValue(t *testing.T) {
	count := New(2)
	doubled := Derive(func() int { return count.Get() * 2 }, count)

	assert.Equal(t, 4, doubled.Get())
	assert.Equal(t, uint64(1), doubled.Recomputations())
}

func TestDerive_RecomputesExactlyOncePerChange(t *testing.T) {
	count := New(0)
	doubled := Derive(func() int { return count.Get() * 2 }, count)

	count.Set(1)
	assert.Equal(t, 2, doubled.Get())
	assert.Equal(t, uint64(2), doubled.Recomputations())

	count.Set(5)
	assert.Equal(t, 10, doubled.Get())
	assert.Equal(t, uint64(3), doubled.Recomputations())
}

func TestDerive_NoOpWriteDoesNotRecompute(t *testing.T) {
	count := New(3)
	doubled := Derive(func() int { return count.Get() * 2 }, count)

	count.Set(3)
	assert.Equal(t, uint64(1), doubled.Recomputations())
}

func TestDerive_NotifiesOnlyOnValueChange(t *testing.T) {
	count := New(1)
	sign := Derive(func() int {
		if count.Get() < 0 {
			return -1
		}
		return 1
	}, count)

	var notified int
	sign.Watch(func(int, int) { notified++ })

	count.Set(2)
	assert.Equal(t, 0, notified, "sign did not change")
	assert.Equal(t, uint64(2), sign.Recomputations(), "but it did recompute")

	count.Set(-4)
	assert.Equal(t, 1, notified)
	assert.Equal(t, -1, sign.Get())
}

func TestDerive_MultipleDependencies(t *testing.T) {
	first := New("ada")
	last := New("lovelace")
	full := Derive(func() string {
		return strings.TrimSpace(first.Get() + " " + last.Get())
	}, first, last)

	assert.Equal(t, "ada lovelace", full.Get())

	first.Set("grace")
	assert.Equal(t, "grace lovelace", full.Get())
	last.Set("hopper")
	assert.Equal(t, "grace hopper", full.Get())
	assert.Equal(t, uint64(3), full.Recomputations())
}

func TestDerive_ChainsThroughDerived(t *testing.T) {
	count := New(1)
	doubled := Derive(func() int { return count.Get() * 2 }, count)
	quadrupled := Derive(func() int { return doubled.Get() * 2 }, doubled)

	count.Set(3)
	assert.Equal(t, 6, doubled.Get())
	assert.Equal(t, 12, quadrupled.Get())
}

func TestDerived_CloseDetaches(t *testing.T) {
	count := New(1)
	doubled := Derive(func() int { return count.Get() * 2 }, count)

	doubled.Close()
	doubled.Close()

	count.Set(10)
	assert.Equal(t, 2, doubled.Get(), "stale but readable after close")
	assert.Equal(t, uint64(1), doubled.Recomputations())
}

func TestDeriveWith_CustomEquality(t *testing.T) {
	words := New("one")
	length := Derive(func() int { return len(words.Get()) }, words)

	// Parity equality: lengths with the same parity count as unchanged
	parity := DeriveWith(
		func() int { return length.Get() },
		[]Option[int]{WithEqual(func(a, b int) bool { return a%2 == b%2 })},
		length,
	)

	var notified int
	parity.Watch(func(int, int) { notified++ })

	words.Set("seven")
	assert.Equal(t, 0, notified, "3 and 5 share parity")

	words.Set("four")
	assert.Equal(t, 1, notified)
}
