package model

import (
	"time"

	log "github.com/golang/glog"
	"golang.org/x/exp/rand"

	"github.com/xjzhou/word2vec/corpus"
	"github.com/xjzhou/word2vec/matrix"
	"github.com/xjzhou/word2vec/vocab"
)

func init() {
	Register("skipgram", NewWord2Vec)
}

// Word2Vec trains skip-gram embeddings with hierarchical softmax.
//
// syn0 holds one input vector per word and syn1 one output vector per
// internal node of the Huffman tree. During Train both tables are
// written by every worker without any locking; updates touch few rows
// and the occasional lost write does not hurt convergence.
type Word2Vec struct {
	cfg   Config
	vocab *vocab.Vocab

	syn0     *matrix.Float32Matrix // input vectors, one row per word
	syn1     *matrix.Float32Matrix // output vectors, one row per internal node
	syn0norm *matrix.Float32Matrix // unit length copy of syn0 for queries

	trainedWords int64
}

// NewWord2Vec creates an untrained skip-gram model
func NewWord2Vec(cfg Config) Model {
	return &Word2Vec{cfg: cfg}
}

func (this *Word2Vec) seed() uint64 {
	if this.cfg.Seed != 0 {
		return this.cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

// BuildVocab builds the vocabulary and the Huffman tree from sentences
// and allocates fresh weight tables. Any previous state is discarded.
func (this *Word2Vec) BuildVocab(sentences []*corpus.Sentence) error {
	if err := this.cfg.Validate(); err != nil {
		return err
	}
	v, err := vocab.Build(sentences, this.cfg.MinCount)
	if err != nil {
		return err
	}

	n := uint32(v.Len())
	size := uint32(this.cfg.Size)
	syn0 := matrix.NewFloat32Matrix(n, size)
	rng := rand.New(rand.NewSource(this.seed()))
	data := syn0.Data()
	for i := range data {
		data[i] = (rng.Float32() - 0.5) / float32(size)
	}

	this.vocab = v
	this.syn0 = syn0
	this.syn1 = matrix.NewFloat32Matrix(uint32(v.Tree().InternalNum()), size)
	this.syn0norm = nil
	this.trainedWords = 0
	vocabSizeGauge.Set(float64(n))

	log.Infof("allocated %dx%d input and %dx%d output weights",
		n, size, v.Tree().InternalNum(), size)
	return nil
}

func (this *Word2Vec) Vocab() *vocab.Vocab { return this.vocab }

func (this *Word2Vec) Syn0() *matrix.Float32Matrix { return this.syn0 }

func (this *Word2Vec) Syn1() *matrix.Float32Matrix { return this.syn1 }

// TrainedWords is the number of word positions processed by the last
// call to Train.
func (this *Word2Vec) TrainedWords() int64 { return this.trainedWords }

func (this *Word2Vec) Has(word string) bool {
	return this.vocab != nil && this.vocab.Has(word)
}

// Vector returns a copy of the input vector of word.
func (this *Word2Vec) Vector(word string) ([]float32, bool) {
	if this.vocab == nil {
		return nil, false
	}
	w, ok := this.vocab.Lookup(word)
	if !ok {
		return nil, false
	}
	row := this.syn0.Row(uint32(w.Index))
	out := make([]float32, len(row))
	copy(out, row)
	return out, true
}
