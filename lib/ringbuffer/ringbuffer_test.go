package ringbuffer_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringkit/ringkit/lib/ringbuffer"
)

func newBuffer[T comparable](t *testing.T, capacity int) *ringbuffer.RingBuffer[T] {
	t.Helper()
	rb, err := ringbuffer.New[T](capacity)
	require.NoError(t, err)
	return rb
}

func TestNew(t *testing.T) {
	rb := newBuffer[int](t, 5)
	assert.Equal(t, 5, rb.Cap())
	assert.Equal(t, 0, rb.Len())
	assert.True(t, rb.IsEmpty())
	assert.False(t, rb.IsFull())
	assert.Empty(t, rb.Snapshot())
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -10} {
		t.Run(fmt.Sprintf("capacity_%d", capacity), func(t *testing.T) {
			rb, err := ringbuffer.New[int](capacity)
			require.Error(t, err)
			assert.Nil(t, rb)
			assert.True(t, errors.Is(err, ringbuffer.ErrInvalidArgument))
			assert.Contains(t, err.Error(), "capacity must be positive")
		})
	}
}

func TestPushAndLen(t *testing.T) {
	rb := newBuffer[int](t, 3)

	rb.Push(1)
	assert.Equal(t, 1, rb.Len())
	assert.False(t, rb.IsEmpty())

	rb.Push(2)
	rb.Push(3)
	assert.Equal(t, 3, rb.Len())
	assert.True(t, rb.IsFull())

	rb.Push(4)
	assert.Equal(t, 3, rb.Len())
	assert.True(t, rb.IsFull())
}

func TestSnapshotKeepsLastCapacityItems(t *testing.T) {
	const capacity = 4
	for k := 0; k <= 9; k++ {
		t.Run(fmt.Sprintf("extra_%d", k), func(t *testing.T) {
			rb := newBuffer[int](t, capacity)
			var pushed []int
			for i := 0; i < capacity+k; i++ {
				rb.Push(i)
				pushed = append(pushed, i)
			}
			assert.Equal(t, pushed[len(pushed)-capacity:], rb.Snapshot())
		})
	}

	t.Run("fewer than capacity", func(t *testing.T) {
		rb := newBuffer[int](t, capacity)
		rb.Push(7)
		rb.Push(8)
		assert.Equal(t, []int{7, 8}, rb.Snapshot())
	})
}

func TestEvictionDropsOldest(t *testing.T) {
	rb := newBuffer[string](t, 3)
	rb.Push("apple")
	rb.Push("banana")
	rb.Push("cherry")
	require.True(t, rb.Contains("apple"))

	rb.Push("date")
	assert.False(t, rb.Contains("apple"))
	assert.True(t, rb.Contains("banana"))
	assert.Equal(t, []string{"banana", "cherry", "date"}, rb.Snapshot())
}

func TestScenarioCapacityThree(t *testing.T) {
	rb := newBuffer[int](t, 3)
	for i := 1; i <= 5; i++ {
		rb.Push(i)
	}
	assert.Equal(t, []int{3, 4, 5}, rb.Snapshot())
	assert.False(t, rb.Contains(1))
	assert.True(t, rb.Contains(4))
}

func TestScenarioCapacityOne(t *testing.T) {
	rb := newBuffer[int](t, 1)
	rb.Push(100)
	assert.Equal(t, []int{100}, rb.Snapshot())
	rb.Push(200)
	assert.Equal(t, []int{200}, rb.Snapshot())

	v, ok := rb.Pop().Get()
	require.True(t, ok)
	assert.Equal(t, 200, v)
	assert.True(t, rb.IsEmpty())
}

func TestEmptyPopAndPeek(t *testing.T) {
	rb := newBuffer[int](t, 2)
	assert.False(t, rb.Pop().IsPresent())
	assert.False(t, rb.Peek().IsPresent())

	rb.Push(1)
	rb.Clear()
	assert.False(t, rb.Pop().IsPresent())
	assert.False(t, rb.Peek().IsPresent())
}

func TestPeekDoesNotMutate(t *testing.T) {
	rb := newBuffer[int](t, 3)
	rb.Push(1)
	rb.Push(2)

	for i := 0; i < 3; i++ {
		v, ok := rb.Peek().Get()
		require.True(t, ok)
		assert.Equal(t, 1, v)
	}
	assert.Equal(t, 2, rb.Len())
	assert.Equal(t, []int{1, 2}, rb.Snapshot())
}

func TestPopRoundTrip(t *testing.T) {
	rb := newBuffer[int](t, 5)
	want := []int{10, 20, 30, 40, 50}
	for _, v := range want {
		rb.Push(v)
	}

	var got []int
	for range want {
		v, ok := rb.Pop().Get()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, want, got)
	assert.True(t, rb.IsEmpty())
}

func TestPopAfterWrap(t *testing.T) {
	rb := newBuffer[int](t, 5)
	for i := 1; i <= 7; i++ {
		rb.Push(i)
	}
	for _, want := range []int{3, 4, 5} {
		v, ok := rb.Pop().Get()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	for i := 8; i <= 10; i++ {
		rb.Push(i)
	}
	assert.Equal(t, []int{6, 7, 8, 9, 10}, rb.Snapshot())
	assert.True(t, rb.Contains(6))
	assert.False(t, rb.Contains(5))
}

func TestClear(t *testing.T) {
	rb := newBuffer[int](t, 3)
	rb.Clear()
	assert.True(t, rb.IsEmpty())

	rb.Push(1)
	rb.Push(2)
	rb.Clear()
	assert.True(t, rb.IsEmpty())
	assert.Equal(t, 3, rb.Cap())

	rb.Clear()
	assert.True(t, rb.IsEmpty())
	assert.Equal(t, 0, rb.Len())

	rb.Push(9)
	assert.Equal(t, []int{9}, rb.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	rb := newBuffer[int](t, 3)
	rb.Push(1)
	rb.Push(2)

	snap := rb.Snapshot()
	snap[0] = 999

	assert.Equal(t, []int{1, 2}, rb.Snapshot())
}

func TestNilItemIsNotAbsence(t *testing.T) {
	rb := newBuffer[*int](t, 2)
	rb.Push(nil)

	peeked := rb.Peek()
	require.True(t, peeked.IsPresent())
	v, _ := peeked.Get()
	assert.Nil(t, v)
	assert.True(t, rb.Contains(nil))

	popped := rb.Pop()
	require.True(t, popped.IsPresent())
	assert.False(t, rb.Pop().IsPresent())
}

type point struct {
	X, Y float64
}

func TestStructItems(t *testing.T) {
	rb := newBuffer[point](t, 2)
	rb.Push(point{1, 2})
	rb.Push(point{3, 4})
	rb.Push(point{5, 6})

	assert.False(t, rb.Contains(point{1, 2}))
	assert.True(t, rb.Contains(point{3, 4}))
	assert.Equal(t, []point{{3, 4}, {5, 6}}, rb.Snapshot())
}

func TestAllStopsEarly(t *testing.T) {
	rb := newBuffer[int](t, 4)
	for i := 1; i <= 6; i++ {
		rb.Push(i)
	}
	var seen []int
	for v := range rb.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{3, 4}, seen)
}

func TestString(t *testing.T) {
	rb := newBuffer[int](t, 3)
	assert.Equal(t, "RingBuffer(capacity=3, size=0, items=[])", rb.String())
	for i := 1; i <= 4; i++ {
		rb.Push(i)
	}
	assert.Equal(t, "RingBuffer(capacity=3, size=3, items=[2 3 4])", rb.String())
}

// Random push/pop sequences are checked against a plain slice model.
func TestRandomOperations(t *testing.T) {
	for _, capacity := range []int{1, 2, 3, 7} {
		t.Run(fmt.Sprintf("capacity_%d", capacity), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(capacity), 42))
			rb := newBuffer[int](t, capacity)
			var model []int

			for step := 0; step < 500; step++ {
				switch rng.IntN(5) {
				case 0, 1, 2:
					rb.Push(step)
					model = append(model, step)
					if len(model) > capacity {
						model = model[1:]
					}
				case 3:
					v, ok := rb.Pop().Get()
					if len(model) == 0 {
						require.False(t, ok, "step %d", step)
					} else {
						require.True(t, ok, "step %d", step)
						require.Equal(t, model[0], v, "step %d", step)
						model = model[1:]
					}
				case 4:
					if rng.IntN(10) == 0 {
						rb.Clear()
						model = nil
					}
				}

				require.GreaterOrEqual(t, rb.Len(), 0)
				require.LessOrEqual(t, rb.Len(), capacity)
				require.Equal(t, len(model), rb.Len(), "step %d", step)
				require.Equal(t, len(model) == 0, rb.IsEmpty(), "step %d", step)
				require.Equal(t, len(model) == capacity, rb.IsFull(), "step %d", step)
			}
			if len(model) == 0 {
				model = []int{}
			}
			assert.Equal(t, model, rb.Snapshot())
		})
	}
}
