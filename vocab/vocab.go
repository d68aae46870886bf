package vocab

import (
	"fmt"
	"sort"

	log "github.com/golang/glog"

	"github.com/xjzhou/word2vec/corpus"
)

// Word is a leaf of the vocabulary. Codes and Points describe the root
// to leaf path in the Huffman tree and always have the same length;
// they are empty for words loaded from a vector file.
type Word struct {
	Index  int32
	Text   string
	Count  uint32
	Codes  []uint8
	Points []int32
}

// IsLeaf reports whether the word has a usable Huffman path.
func (w *Word) IsLeaf() bool {
	return len(w.Codes) > 0
}

// Vocab owns every Word. Words is ordered by Index, which is a
// contiguous range [0, Len()).
type Vocab struct {
	words []*Word
	dict  map[string]*Word
	tree  *Tree
	total uint64
}

// Build counts the tokens of the sentences, keeps the ones whose count
// is strictly greater than minCount and builds the Huffman tree over
// the survivors. Indices follow the order in which tokens first occur.
func Build(sentences []*corpus.Sentence, minCount int) (*Vocab, error) {
	counts := make(map[string]uint32)
	var order []string
	var total uint64

	progress := func(n int) {
		log.Infof("collecting %d sentences, %d distinct words, %d words",
			n, len(counts), total)
	}

	for i, sentence := range sentences {
		if (i+1)%10000 == 0 {
			progress(i + 1)
		}
		for _, token := range sentence.Tokens {
			if _, ok := counts[token]; !ok {
				order = append(order, token)
			}
			counts[token] += 1
			total += 1
		}
	}
	progress(len(sentences))

	v := &Vocab{dict: make(map[string]*Word)}
	for _, text := range order {
		count := counts[text]
		if int64(count) <= int64(minCount) {
			continue
		}
		v.add(text, count)
	}
	log.Infof("collected %d distinct words with min_count=%d", v.Len(), minCount)

	if v.Len() < 2 {
		return nil, fmt.Errorf("%w: %d left with min_count=%d",
			ErrVocabularyTooSmall, v.Len(), minCount)
	}

	v.tree = BuildTree(v.words)
	log.Infof("built huffman tree with maximum node depth %d", v.tree.MaxDepth)
	return v, nil
}

// FromTexts creates a vocabulary whose words carry no frequency and no
// Huffman path, as recovered from a vector file.
func FromTexts(texts []string) *Vocab {
	v := &Vocab{dict: make(map[string]*Word, len(texts))}
	for _, text := range texts {
		v.add(text, 0)
	}
	return v
}

func (v *Vocab) add(text string, count uint32) {
	if _, ok := v.dict[text]; ok {
		return
	}
	w := &Word{Index: int32(len(v.words)), Text: text, Count: count}
	v.dict[text] = w
	v.words = append(v.words, w)
	v.total += uint64(count)
}

func (v *Vocab) Len() int { return len(v.words) }

// Word returns the word at index i.
func (v *Vocab) Word(i int32) *Word { return v.words[i] }

func (v *Vocab) Words() []*Word { return v.words }

func (v *Vocab) Lookup(text string) (*Word, bool) {
	w, ok := v.dict[text]
	return w, ok
}

func (v *Vocab) Has(text string) bool {
	_, ok := v.dict[text]
	return ok
}

// TotalCount is the sum of the counts of all surviving words.
func (v *Vocab) TotalCount() uint64 { return v.total }

// Tree is nil for vocabularies that were not built from a corpus.
func (v *Vocab) Tree() *Tree { return v.tree }

// Resolve replaces s.Words with the indices of the tokens of s that are
// in the vocabulary and returns how many there are.
func (v *Vocab) Resolve(s *corpus.Sentence) int {
	s.Words = s.Words[:0]
	for _, token := range s.Tokens {
		if w, ok := v.dict[token]; ok {
			s.Words = append(s.Words, w.Index)
		}
	}
	return len(s.Words)
}

// ByCount returns the words ordered by descending count, ties by index.
func (v *Vocab) ByCount() []*Word {
	words := make([]*Word, len(v.words))
	copy(words, v.words)
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Count > words[j].Count
	})
	return words
}
