package model

import (
	"fmt"

	"github.com/xjzhou/word2vec/corpus"
)

var constructors = make(map[string]ModelCtor)

// the common interface embedding trainers should follow
type Model interface {
	// count tokens, filter rare ones, build the tree and allocate weights
	BuildVocab(sentences []*corpus.Sentence) error
	// train on sentences with the given number of workers
	Train(sentences []*corpus.Sentence, workers int) error
	// nearest words to the sum of positive minus negative word vectors
	MostSimilar(positive, negative []string, topn int) []Similar
	// dot product of the raw vectors of two words
	Similarity(w1, w2 string) float32
	// serialize the input vectors
	Save(fn string) error
	// deserialize the input vectors, replacing the vocabulary
	Load(fn string) error
}

// Similar is one result of a similarity query.
type Similar struct {
	Word  string
	Score float32
}

// new models should register themselves using this function
func Register(modelType string, m ModelCtor) {
	constructors[modelType] = m
}

type ModelCtor func(cfg Config) Model

func GetModel(modelType string) (ModelCtor, error) {
	if _, ok := constructors[modelType]; !ok {
		return nil, fmt.Errorf("model %s not registered", modelType)
	}
	return constructors[modelType], nil
}
