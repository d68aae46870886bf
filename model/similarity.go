package model

import (
	"container/heap"
	"sort"

	"github.com/xjzhou/word2vec/util"
)

// buildNorm refreshes syn0norm from syn0. Zero rows stay zero.
func (this *Word2Vec) buildNorm() {
	norm := this.syn0.Clone()
	rows, _ := norm.Shape()
	for r := uint32(0); r < rows; r += 1 {
		util.Unit(norm.Row(r))
	}
	this.syn0norm = norm
}

// Similarity is the dot product of the raw input vectors of w1 and w2,
// or 0 when either word is unknown.
func (this *Word2Vec) Similarity(w1, w2 string) float32 {
	if this.vocab == nil {
		return 0
	}
	a, ok1 := this.vocab.Lookup(w1)
	b, ok2 := this.vocab.Lookup(w2)
	if !ok1 || !ok2 {
		return 0
	}
	return util.Dot(this.syn0.Row(uint32(a.Index)), this.syn0.Row(uint32(b.Index)))
}

// MostSimilar ranks the vocabulary by cosine similarity to the unit
// mean of the positive vectors minus the negative ones. Unknown words
// are ignored and query words never appear in the result. At most
// topn+len(query) candidates are selected before the query words are
// filtered out, so fewer than topn results may come back.
func (this *Word2Vec) MostSimilar(positive, negative []string, topn int) []Similar {
	if (len(positive) == 0 && len(negative) == 0) || topn <= 0 ||
		this.syn0norm == nil || this.vocab == nil || this.vocab.Len() == 0 {
		return []Similar{}
	}

	rows, size := this.syn0norm.Shape()
	mean := make([]float32, size)
	query := make(map[int32]struct{})
	add := func(text string, weight float32) {
		w, ok := this.vocab.Lookup(text)
		if !ok {
			return
		}
		util.Saxpy(mean, weight, this.syn0norm.Row(uint32(w.Index)))
		query[w.Index] = struct{}{}
	}
	for _, w := range positive {
		add(w, 1)
	}
	for _, w := range negative {
		add(w, -1)
	}
	if len(query) == 0 {
		return []Similar{}
	}
	util.Unit(mean)

	dists := make([]float32, rows)
	util.MatVec(this.syn0norm.Data(), int(rows), mean, dists)

	k := min(topn+len(query), int(rows))
	best := topK(dists, k)

	results := make([]Similar, 0, topn)
	for _, idx := range best {
		if _, ok := query[idx]; ok {
			continue
		}
		results = append(results, Similar{
			Word:  this.vocab.Word(idx).Text,
			Score: dists[idx],
		})
		if len(results) >= topn {
			break
		}
	}
	return results
}

// min-heap of indices ordered by score
type scoreHeap struct {
	idx    []int32
	scores []float32
}

func (h *scoreHeap) Len() int           { return len(h.idx) }
func (h *scoreHeap) Less(i, j int) bool { return h.scores[h.idx[i]] < h.scores[h.idx[j]] }
func (h *scoreHeap) Swap(i, j int)      { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *scoreHeap) Push(x interface{}) { h.idx = append(h.idx, x.(int32)) }
func (h *scoreHeap) Pop() interface{} {
	old := h.idx
	i := old[len(old)-1]
	h.idx = old[:len(old)-1]
	return i
}

// topK returns the indices of the k highest scores in descending
// order, keeping only k candidates in a heap instead of sorting all of
// them.
func topK(scores []float32, k int) []int32 {
	if k <= 0 {
		return nil
	}
	h := &scoreHeap{idx: make([]int32, 0, k), scores: scores}
	for i := range scores {
		if h.Len() < k {
			heap.Push(h, int32(i))
			continue
		}
		if scores[i] > scores[h.idx[0]] {
			h.idx[0] = int32(i)
			heap.Fix(h, 0)
		}
	}

	best := h.idx
	sort.Slice(best, func(i, j int) bool {
		a, b := best[i], best[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		return a < b
	})
	return best
}
