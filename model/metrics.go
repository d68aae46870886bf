package model

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	processedWordsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "word2vec_processed_words_total",
			Help: "words trained across all workers",
		},
	)
	trainedBatchesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "word2vec_trained_batches_total",
			Help: "sentence batches trained",
		},
	)
	learningRateGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "word2vec_learning_rate",
			Help: "learning rate used by the most recent batch",
		},
	)
	vocabSizeGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "word2vec_vocabulary_size",
			Help: "number of words in the current vocabulary",
		},
	)
)

func init() {
	prometheus.MustRegister(processedWordsCounter)
	prometheus.MustRegister(trainedBatchesCounter)
	prometheus.MustRegister(learningRateGauge)
	prometheus.MustRegister(vocabSizeGauge)
}

func observeBatch(words int, alpha float32) {
	processedWordsCounter.Add(float64(words))
	trainedBatchesCounter.Inc()
	learningRateGauge.Set(float64(alpha))
}
