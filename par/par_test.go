package par_test

import (
	"fmt"
	"testing"

	"github.com/exascience/disjoint"
	"github.com/exascience/disjoint/index"
	"github.com/exascience/disjoint/par"
)

func TestSplitLengths(t *testing.T) {
	p := par.NewProducer(disjoint.FromSlice(make([]int, 10)))
	for k := 0; k <= 10; k++ {
		left, right := p.SplitAt(k)
		if left.Len() != k {
			t.Errorf("left.Len() = %v, want %v", left.Len(), k)
		}
		if right.Len() != 10-k {
			t.Errorf("right.Len() = %v, want %v", right.Len(), 10-k)
		}
	}
}

func TestSplitPartition(t *testing.T) {
	// Splitting down to leaves must visit every position exactly once,
	// in order, with nothing lost or duplicated.
	var visited []int
	var descend func(p par.Producer[*int])
	descend = func(p par.Producer[*int]) {
		switch {
		case p.Len() == 0:
		case p.Len() == 1:
			p.Each(func(pos int, _ *int) error {
				visited = append(visited, pos)
				return nil
			})
		default:
			left, right := p.SplitAt(p.Len() / 2)
			descend(left)
			descend(right)
		}
	}
	descend(par.NewProducer(disjoint.FromSlice(make([]int, 13))))
	if len(visited) != 13 {
		t.Fatalf("visited %v positions, want 13", len(visited))
	}
	for i, pos := range visited {
		if pos != i {
			t.Errorf("visited[%v] = %v, want %v", i, pos, i)
		}
	}
}

func TestSplitAtInvalid(t *testing.T) {
	p := par.NewProducer(disjoint.FromSlice(make([]int, 5)))
	for _, k := range []int{-1, 6} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SplitAt(%v) did not panic", k)
				}
			}()
			p.SplitAt(k)
		}()
	}
}

func TestLeafRecord(t *testing.T) {
	data := []int{5, 6, 7}
	p := par.NewProducer(disjoint.FromSlice(data))
	_, rest := p.SplitAt(2)
	if rest.Len() != 1 {
		t.Fatalf("rest.Len() = %v, want 1", rest.Len())
	}
	*rest.Record(0) = 70
	if data[2] != 70 {
		t.Errorf("data[2] = %v, want 70", data[2])
	}
}

func TestForEachNarrowed(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	selected, err := index.CheckUnique(index.Slice[int]{4, 7, 1})
	if err != nil {
		t.Fatal(err)
	}
	narrowed, err := index.Narrow(disjoint.FromSlice(data), selected)
	if err != nil {
		t.Fatal(err)
	}
	err = par.ForEach(narrowed, 0, func(_ int, record *int) error {
		*record = 0
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 0, 2, 3, 0, 5, 6, 0, 8, 9}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%v] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestForEachVisitsEachPositionOnce(t *testing.T) {
	data := make([]int, 1000)
	err := par.ForEach(disjoint.FromSlice(data), 0, func(pos int, record *int) error {
		*record++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range data {
		if v != 1 {
			t.Errorf("position %v visited %v times, want 1", i, v)
		}
	}
}

func TestForEachEmpty(t *testing.T) {
	err := par.ForEach(disjoint.FromSlice([]int{}), 0, func(pos int, _ *int) error {
		t.Errorf("unexpected visit of position %v", pos)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestForEachLeftmostError(t *testing.T) {
	data := make([]int, 100)
	err := par.ForEach(disjoint.FromSlice(data), 8, func(pos int, _ *int) error {
		if pos == 17 || pos == 83 {
			return fmt.Errorf("error at %d", pos)
		}
		return nil
	})
	if err == nil || err.Error() != "error at 17" {
		t.Errorf("err = %v, want error at 17", err)
	}
}

func TestForEachPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	par.ForEach(disjoint.FromSlice(make([]int, 64)), 4, func(pos int, _ *int) error {
		if pos == 40 {
			panic("worker failure")
		}
		return nil
	})
}

func TestReduce(t *testing.T) {
	data := make([]int, 100)
	for i := range data {
		data[i] = i + 1
	}
	sum, err := par.Reduce(
		disjoint.FromSlice(data), 0,
		func(batch par.Producer[*int]) (int, error) {
			var s int
			batch.Each(func(_ int, record *int) error {
				s += *record
				return nil
			})
			return s, nil
		},
		func(x, y int) (int, error) {
			return x + y, nil
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	if sum != 5050 {
		t.Errorf("sum = %v, want 5050", sum)
	}
}

func TestReduceLeftmostError(t *testing.T) {
	data := make([]int, 100)
	_, err := par.Reduce(
		disjoint.FromSlice(data), 8,
		func(batch par.Producer[*int]) (int, error) {
			return 0, batch.Each(func(pos int, _ *int) error {
				if pos == 17 || pos == 83 {
					return fmt.Errorf("error at %d", pos)
				}
				return nil
			})
		},
		func(x, y int) (int, error) {
			return x + y, nil
		},
	)
	if err == nil || err.Error() != "error at 17" {
		t.Errorf("err = %v, want error at 17", err)
	}
}

func TestReducePairError(t *testing.T) {
	data := make([]int, 100)
	pairErr := fmt.Errorf("pair failure")
	_, err := par.Reduce(
		disjoint.FromSlice(data), 8,
		func(batch par.Producer[*int]) (int, error) {
			return batch.Len(), nil
		},
		func(x, y int) (int, error) {
			return 0, pairErr
		},
	)
	if err != pairErr {
		t.Errorf("err = %v, want %v", err, pairErr)
	}
}

func TestReducePanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	par.Reduce(
		disjoint.FromSlice(make([]int, 64)), 4,
		func(batch par.Producer[*int]) (int, error) {
			return 0, batch.Each(func(pos int, _ *int) error {
				if pos == 40 {
					panic("worker failure")
				}
				return nil
			})
		},
		func(x, y int) (int, error) {
			return x + y, nil
		},
	)
}

func ExampleForEach() {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	selected, err := index.CheckUnique(index.Slice[int]{4, 7, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	narrowed, err := index.Narrow(disjoint.FromSlice(data), selected)
	if err != nil {
		fmt.Println(err)
		return
	}

	par.ForEach(narrowed, 0, func(_ int, record *int) error {
		*record = 0
		return nil
	})

	fmt.Println(data)

	// Output:
	// [0 0 2 3 0 5 6 0 8 9]
}
