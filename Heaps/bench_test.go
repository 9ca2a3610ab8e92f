package Heaps

import (
	"testing"

	"github.com/emirpasic/gods/trees/binaryheap"
)

const bAddN = 1 << 16

func BenchmarkHeap_Insert(b *testing.B) {
	a := randInts(bAddN)
	b.ResetTimer()
	for range b.N {
		h := New[int](Min)
		for _, v := range a {
			h.Insert(v)
		}
	}
}

func BenchmarkHeap_From(b *testing.B) {
	a := randInts(bAddN)
	c := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		copy(c, a)
		From(c, Min)
	}
}

func BenchmarkHeap_Extract(b *testing.B) {
	a := randInts(bAddN)
	c := make([]int, bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		copy(c, a)
		h := From(c, Min)
		b.StartTimer()
		for _, ok := h.ExtractTop(); ok; _, ok = h.ExtractTop() {
		}
	}
}

func BenchmarkGodsBinaryHeap_Insert(b *testing.B) {
	a := randInts(bAddN)
	b.ResetTimer()
	for range b.N {
		h := binaryheap.NewWithIntComparator()
		for _, v := range a {
			h.Push(v)
		}
	}
}
