package model

import (
	"golang.org/x/exp/rand"

	"github.com/xjzhou/word2vec/corpus"
	"github.com/xjzhou/word2vec/table"
	"github.com/xjzhou/word2vec/util"
)

// trainSentence applies one pass of skip-gram hierarchical softmax over
// the resolved words of sentence and returns the number of positions
// processed. work is scratch space of cfg.Size floats owned by the
// calling worker. Rows of syn0 and syn1 are updated in place.
func (this *Word2Vec) trainSentence(sentence *corpus.Sentence, alpha float32,
	rng *rand.Rand, work []float32) int {
	words := sentence.Words
	n := len(words)
	window := this.cfg.Window
	// one shrink of the window for the whole sentence
	reduced := rng.Intn(window)

	for i := 0; i < n; i += 1 {
		current := this.vocab.Word(words[i])

		lo := max(0, i-window+reduced)
		hi := min(n, i+window+1-reduced)
		for j := lo; j < hi; j += 1 {
			if j == i {
				continue
			}
			word := this.vocab.Word(words[j])
			if !word.IsLeaf() {
				continue
			}
			l1 := this.syn0.Row(uint32(word.Index))

			clear(work)
			for b, code := range current.Codes {
				l2 := this.syn1.Row(uint32(current.Points[b]))
				f, ok := table.Sigmoid(util.Dot(l1, l2))
				if !ok {
					continue
				}
				g := (1 - float32(code) - f) * alpha
				util.Saxpy(work, g, l2)
				util.Saxpy(l2, g, l1)
			}
			util.Saxpy(l1, 1, work)
		}
	}
	return n
}
