package freq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocompress/arcode"
)

func TestFlatTable(t *testing.T) {
	f, err := NewFlat(5)
	require.NoError(t, err)
	require.Equal(t, 5, f.Limit())
	require.Equal(t, uint64(5), f.Total())

	for i := 0; i < 5; i++ {
		require.Equal(t, uint64(1), f.Get(i))
		require.Equal(t, uint64(i), f.Low(i))
		require.Equal(t, uint64(i+1), f.High(i))
	}

	require.Panics(t, func() { f.Get(5) })
	require.Panics(t, func() { f.Get(-1) })
}

func TestFlatRejectsNonPositiveLimit(t *testing.T) {
	_, err := NewFlat(0)
	require.Error(t, err)

	var codecErr *arcode.CodecError
	require.ErrorAs(t, err, &codecErr)
	require.Equal(t, arcode.InvalidArgument, codecErr.Kind)
}

func TestSimpleTableCumulative(t *testing.T) {
	s, err := NewSimple([]uint64{2, 0, 3, 1})
	require.NoError(t, err)
	require.Equal(t, uint64(6), s.Total())

	require.Equal(t, uint64(0), s.Low(0))
	require.Equal(t, uint64(2), s.High(0))
	require.Equal(t, uint64(2), s.Low(1))
	require.Equal(t, uint64(2), s.High(1))
	require.Equal(t, uint64(2), s.Low(2))
	require.Equal(t, uint64(5), s.High(2))
	require.Equal(t, uint64(5), s.Low(3))
	require.Equal(t, uint64(6), s.High(3))
}

func TestSimpleIncrementInvalidatesCache(t *testing.T) {
	s, err := NewSimple([]uint64{0, 0, 0})
	require.NoError(t, err)

	require.Equal(t, uint64(0), s.High(2))

	s.Increment(1)
	require.Equal(t, uint64(1), s.Total())
	require.Equal(t, uint64(0), s.Low(1))
	require.Equal(t, uint64(1), s.High(1))
	require.Equal(t, uint64(1), s.Low(2))
	require.Equal(t, uint64(1), s.High(2))

	s.Set(0, 4)
	require.Equal(t, uint64(5), s.Total())
	require.Equal(t, uint64(0), s.Low(0))
	require.Equal(t, uint64(4), s.High(0))
}

func TestSimpleIncrementStress(t *testing.T) {
	s, err := NewSimple(make([]uint64, 257))
	require.NoError(t, err)

	for round := 0; round < 1000; round++ {
		symbol := round % 257
		s.Increment(symbol)

		var want uint64

		for i := 0; i < symbol; i++ {
			want += s.Get(i)
		}

		require.Equal(t, want, s.Low(symbol))
		require.Equal(t, want+s.Get(symbol), s.High(symbol))
	}
}

func TestCheckedDelegatesAndValidates(t *testing.T) {
	s, err := NewSimple([]uint64{1, 2, 3})
	require.NoError(t, err)

	c := NewChecked(s)
	require.Equal(t, uint64(6), c.Total())
	require.Equal(t, uint64(0), c.Low(0))
	require.Equal(t, uint64(1), c.High(0))

	c.Increment(0)
	require.Equal(t, uint64(2), c.Get(0))
}

func TestCheckedRejectsMutationOnImmutableTable(t *testing.T) {
	f, err := NewFlat(4)
	require.NoError(t, err)

	c := NewChecked(f)
	require.Panics(t, func() { c.Increment(0) })
	require.Panics(t, func() { c.Set(0, 9) })
}

func TestCheckedUnwrapsDoubleWrap(t *testing.T) {
	f, err := NewFlat(4)
	require.NoError(t, err)

	c1 := NewChecked(f)
	c2 := NewChecked(c1)
	require.Same(t, c1, c2)
}
