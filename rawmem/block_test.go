package rawmem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBudget struct {
	limit    int64
	acquired int64
}

func (b *fakeBudget) AcquireMemory(bytes int64) error {
	if b.limit > 0 && b.acquired+bytes > b.limit {
		return errors.New("budget exhausted")
	}
	b.acquired += bytes
	return nil
}

func (b *fakeBudget) ReleaseMemory(bytes int64) {
	b.acquired -= bytes
}

func TestBlock_Empty(t *testing.T) {
	b, err := New[int](0)
	require.NoError(t, err)

	assert.Equal(t, 0, b.Cap())
	assert.Equal(t, 0, b.ByteSize())
	require.NoError(t, b.Release())
}

func TestBlock_SlotAccess(t *testing.T) {
	b, err := New[int](8)
	require.NoError(t, err)
	defer b.Release()

	assert.Equal(t, 8, b.Cap())

	for i := 0; i < 8; i++ {
		*b.At(i) = i * 10
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, i*10, *b.At(i))
	}

	assert.Panics(t, func() { b.At(8) })
}

func TestBlock_Slice(t *testing.T) {
	b, err := New[int](4)
	require.NoError(t, err)
	defer b.Release()

	// The one-past-the-end offset is legal.
	assert.Len(t, b.Slice(0, 4), 4)
	assert.Len(t, b.Slice(4, 4), 0)
	assert.Len(t, b.Slice(1, 3), 2)

	assert.Panics(t, func() { b.Slice(0, 5) })
}

func TestBlock_Transfer(t *testing.T) {
	src, err := New[string](4)
	require.NoError(t, err)

	*src.At(0) = "hello"

	dst := src.Transfer()
	defer dst.Release()

	assert.Equal(t, 0, src.Cap())
	assert.Equal(t, 4, dst.Cap())
	assert.Equal(t, "hello", *dst.At(0))

	// The voided source releases as a no-op.
	require.NoError(t, src.Release())
}

func TestBlock_Swap(t *testing.T) {
	a, err := New[int](2)
	require.NoError(t, err)
	defer a.Release()

	b, err := New[int](6)
	require.NoError(t, err)
	defer b.Release()

	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)

	assert.Equal(t, 6, a.Cap())
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, 2, *a.At(0))
	assert.Equal(t, 1, *b.At(0))
}

func TestBlock_ReleaseIdempotent(t *testing.T) {
	b, err := New[int](4)
	require.NoError(t, err)

	require.NoError(t, b.Release())
	require.NoError(t, b.Release())
	assert.Equal(t, 0, b.Cap())
}

func TestBlock_NegativeCapacityPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = New[int](-1)
	})
}

func TestBlock_Budget(t *testing.T) {
	t.Run("acquire and release", func(t *testing.T) {
		budget := &fakeBudget{}

		b, err := New[int64](16, WithBudget(budget))
		require.NoError(t, err)
		assert.Equal(t, int64(128), budget.acquired)
		assert.Equal(t, 128, b.ByteSize())

		require.NoError(t, b.Release())
		assert.Equal(t, int64(0), budget.acquired)
	})

	t.Run("exhaustion surfaces as AllocError", func(t *testing.T) {
		budget := &fakeBudget{limit: 64}

		_, err := New[int64](16, WithBudget(budget))
		require.Error(t, err)

		var allocErr *AllocError
		require.ErrorAs(t, err, &allocErr)
		assert.Equal(t, 16, allocErr.Capacity)
		assert.Equal(t, int64(0), budget.acquired)
	})
}

func TestBlock_OffHeap(t *testing.T) {
	t.Run("pointer-free type", func(t *testing.T) {
		b, err := New[int32](1024, WithOffHeap())
		require.NoError(t, err)
		defer b.Release()

		assert.Equal(t, 1024, b.Cap())

		for i := 0; i < 1024; i++ {
			*b.At(i) = int32(i)
		}
		for i := 0; i < 1024; i++ {
			require.Equal(t, int32(i), *b.At(i))
		}
	})

	t.Run("struct of scalars", func(t *testing.T) {
		type point struct{ X, Y float64 }

		b, err := New[point](8, WithOffHeap())
		require.NoError(t, err)
		defer b.Release()

		*b.At(3) = point{X: 1.5, Y: -2.5}
		assert.Equal(t, point{X: 1.5, Y: -2.5}, *b.At(3))
	})

	t.Run("pointer-bearing type rejected", func(t *testing.T) {
		_, err := New[string](8, WithOffHeap())
		assert.ErrorIs(t, err, ErrOffHeapPointers)

		type holder struct{ P *int }
		_, err = New[holder](8, WithOffHeap())
		assert.ErrorIs(t, err, ErrOffHeapPointers)
	})

	t.Run("budgeted off-heap releases on mapping teardown", func(t *testing.T) {
		budget := &fakeBudget{}

		b, err := New[uint64](32, WithOffHeap(), WithBudget(budget))
		require.NoError(t, err)
		assert.Equal(t, int64(256), budget.acquired)

		require.NoError(t, b.Release())
		assert.Equal(t, int64(0), budget.acquired)
	})
}

func TestTypeHasPointers(t *testing.T) {
	type scalars struct {
		A int
		B [4]float32
	}
	type withMap struct{ M map[int]int }

	assert.False(t, typeHasPointers[int]())
	assert.False(t, typeHasPointers[scalars]())
	assert.False(t, typeHasPointers[[8]byte]())
	assert.False(t, typeHasPointers[struct{}]())

	assert.True(t, typeHasPointers[string]())
	assert.True(t, typeHasPointers[[]int]())
	assert.True(t, typeHasPointers[*int]())
	assert.True(t, typeHasPointers[withMap]())
	assert.True(t, typeHasPointers[[2]*int]())
	assert.True(t, typeHasPointers[any]())
}

func TestBlock_ZeroSizedElem(t *testing.T) {
	b, err := New[struct{}](16, WithOffHeap())
	require.NoError(t, err)
	defer b.Release()

	assert.Equal(t, 16, b.Cap())
	assert.Equal(t, 0, b.ByteSize())
}
