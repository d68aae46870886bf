package model

import (
	"sync"
	"sync/atomic"
	"time"

	log "github.com/golang/glog"
	"golang.org/x/exp/rand"

	"github.com/xjzhou/word2vec/corpus"
)

// learningRate decays linearly with the share of processed words and
// never drops below minAlpha.
func learningRate(alpha0, minAlpha float32, processed, total int64) float32 {
	if total <= 0 {
		return max(minAlpha, alpha0)
	}
	alpha := float32(float64(alpha0) * (1 - float64(processed)/float64(total)))
	return max(minAlpha, alpha)
}

// Train runs the sentences through workers goroutines. Sentences are
// grouped into batches of cfg.BatchSize and fed over a bounded channel;
// the channel is closed after the last batch and Train returns once
// every worker has drained it. Sentences without any vocabulary word
// are never dispatched. The unit normalized vectors used by
// MostSimilar are rebuilt at the end.
func (this *Word2Vec) Train(sentences []*corpus.Sentence, workers int) error {
	if this.vocab == nil || this.syn1 == nil {
		return ErrNoVocabulary
	}
	if workers < 1 {
		workers = 1
	}

	total := int64(this.vocab.TotalCount())
	alpha0, minAlpha := this.cfg.Alpha, this.cfg.MinAlpha
	batchSize := this.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultConfig().BatchSize
	}

	var processed int64
	jobs := make(chan []*corpus.Sentence, workers)

	var wg sync.WaitGroup
	seed := this.seed()
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + uint64(i) + 1))
		go func(id int) {
			defer wg.Done()
			work := make([]float32, this.cfg.Size)
			for job := range jobs {
				start := time.Now()
				alpha := learningRate(alpha0, minAlpha, atomic.LoadInt64(&processed), total)

				words := 0
				for _, sentence := range job {
					words += this.trainSentence(sentence, alpha, rng, work)
				}
				current := atomic.AddInt64(&processed, int64(words))
				observeBatch(words, alpha)

				if log.V(1) {
					elapsed := time.Since(start).Seconds()
					log.Infof("worker %d training alpha: %f progress: %.2f%% words per thread sec: %.0f",
						id, alpha, float64(current)*100/float64(max(total, 1)),
						float64(words)/max(elapsed, 1e-9))
				}
			}
		}(i)
	}

	batches := 0
	batch := make([]*corpus.Sentence, 0, batchSize)
	for _, sentence := range sentences {
		if len(sentence.Tokens) == 0 {
			continue
		}
		if this.vocab.Resolve(sentence) == 0 {
			continue
		}
		batch = append(batch, sentence)
		if len(batch) == batchSize {
			jobs <- batch
			batches += 1
			batch = make([]*corpus.Sentence, 0, batchSize)
		}
	}
	if len(batch) > 0 {
		jobs <- batch
		batches += 1
	}
	close(jobs)
	wg.Wait()

	this.trainedWords = processed
	log.Infof("trained %d words in %d batches with %d workers", processed, batches, workers)

	this.buildNorm()
	return nil
}
