package model

import (
	log "github.com/golang/glog"

	"github.com/xjzhou/word2vec/sstable"
	"github.com/xjzhou/word2vec/vocab"
)

// Save writes the input vectors, most frequent words first.
func (this *Word2Vec) Save(fn string) error {
	if this.vocab == nil || this.syn0 == nil {
		return ErrNotTrained
	}
	words := this.vocab.ByCount()
	texts := make([]string, len(words))
	vectors := make([][]float32, len(words))
	for i, w := range words {
		texts[i] = w.Text
		vectors[i] = this.syn0.Row(uint32(w.Index))
	}
	if err := sstable.SaveVectors(fn, texts, vectors); err != nil {
		return err
	}
	log.Infof("%d words saved to %s", len(words), fn)
	return nil
}

// Load replaces the model with the vectors stored in fn. Counts are not
// stored, so every loaded word has count 0 and no Huffman path; the
// model can be queried but not trained further. On error the model is
// left unchanged.
func (this *Word2Vec) Load(fn string) error {
	texts, syn0, err := sstable.LoadVectors(fn)
	if err != nil {
		return err
	}
	_, size := syn0.Shape()

	this.vocab = vocab.FromTexts(texts)
	this.syn0 = syn0
	this.syn1 = nil
	this.cfg.Size = int(size)
	this.trainedWords = 0
	this.buildNorm()
	vocabSizeGauge.Set(float64(len(texts)))

	log.Infof("%d words loaded", len(texts))
	return nil
}
