package memo

import (
	"fmt"
	"sync"
)

var (
	partitionMu    sync.Mutex
	partitionCache = make(map[string][][]int)
)

// Partitions returns every length-k composition of non-negative integers
// summing exactly to v (spec.md §4.3 "get_partitions"). E.g. v=4, k=3
// includes [4,0,0], [3,1,0], [2,2,0], ..., [0,0,4]. Results are cached by
// the (v,k) shape and must not be mutated by callers.
func Partitions(v, k int) [][]int {
	key := fmt.Sprintf("%d/%d", v, k)

	partitionMu.Lock()
	if cached, ok := partitionCache[key]; ok {
		partitionMu.Unlock()
		return cached
	}
	partitionMu.Unlock()

	result := computePartitions(v, k)

	partitionMu.Lock()
	partitionCache[key] = result
	partitionMu.Unlock()

	return result
}

// Transports is an alias for Partitions: both enumerate length-k
// non-negative tuples summing exactly to v, the "transport" of v units of
// mass across k outgoing edges (spec.md §4.3 "get_transports").
func Transports(v, k int) [][]int {
	return Partitions(v, k)
}

func computePartitions(v, k int) [][]int {
	if k <= 0 {
		if v == 0 {
			return [][]int{{}}
		}
		return nil
	}
	var result [][]int
	current := make([]int, k)
	current[0] = v
	result = append(result, append([]int(nil), current...))
	partitionsRec(0, current, &result)
	return result
}

// partitionsRec mirrors the recursive structure of the original
// partitions.rs: advance start_index, redistributing the remaining mass
// onto the next coordinate, recording every intermediate configuration.
func partitionsRec(startIndex int, current []int, result *[][]int) {
	if startIndex+1 >= len(current) {
		return
	}
	for current[startIndex] > 0 {
		current[startIndex]--
		sum := 0
		for i := startIndex + 1; i < len(current); i++ {
			sum += current[i]
		}
		current[startIndex+1] = sum + 1
		for i := startIndex + 2; i < len(current); i++ {
			current[i] = 0
		}
		*result = append(*result, append([]int(nil), current...))
		partitionsRec(startIndex+1, current, result)
	}
}
