package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xjzhou/word2vec/corpus"
	"github.com/xjzhou/word2vec/model"
)

var (
	input       = flag.String("input_file", "", "training corpus, one tokenized sentence per line")
	output      = flag.String("output_file", "", "where to save the trained vectors")
	vectors     = flag.String("vector_file", "", "load vectors from this file instead of training")
	modelType   = flag.String("model", "skipgram", "model type")
	size        = flag.Int("size", 100, "embedding dimension")
	window      = flag.Int("window", 5, "context window radius")
	minCount    = flag.Int("min_count", 5, "drop words seen at most this many times")
	alpha       = flag.Float64("alpha", 0.025, "initial learning rate")
	minAlpha    = flag.Float64("min_alpha", 0.0001, "learning rate floor")
	workers     = flag.Int("workers", 4, "number of training workers")
	batchSize   = flag.Int("batch_size", 800, "sentences per training batch")
	seed        = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	query       = flag.String("query", "", "comma separated positive words; prefix a word with - to subtract it")
	topn        = flag.Int("topn", 10, "number of neighbors to print")
	metricsAddr = flag.String("metrics_addr", "", "serve prometheus metrics on this address while running")
)

func main() {
	flag.Parse()
	defer log.Flush()

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Errorf("metrics server: %v", err)
			}
		}()
	}

	ctor, err := model.GetModel(*modelType)
	if err != nil {
		log.Exit(err)
	}
	cfg := model.Config{
		Size:      *size,
		Window:    *window,
		MinCount:  *minCount,
		Alpha:     float32(*alpha),
		MinAlpha:  float32(*minAlpha),
		BatchSize: *batchSize,
		Seed:      *seed,
	}
	m := ctor(cfg)

	switch {
	case *vectors != "":
		if err := m.Load(*vectors); err != nil {
			log.Exit(err)
		}
	case *input != "":
		// read training data
		data := &corpus.Corpus{}
		if err := data.Load(*input); err != nil {
			log.Exit(err)
		}
		if err := m.BuildVocab(data.Sentences); err != nil {
			log.Exit(err)
		}
		if err := m.Train(data.Sentences, *workers); err != nil {
			log.Exit(err)
		}
		if *output != "" {
			if err := m.Save(*output); err != nil {
				log.Exit(err)
			}
		}
	default:
		fmt.Fprintln(os.Stderr, "one of -input_file or -vector_file is required")
		flag.Usage()
		os.Exit(2)
	}

	if *query != "" {
		positive, negative := parseQuery(*query)
		for _, s := range m.MostSimilar(positive, negative, *topn) {
			fmt.Printf("%s\t%f\n", s.Word, s.Score)
		}
	}
}

func parseQuery(q string) (positive, negative []string) {
	for _, w := range strings.Split(q, ",") {
		w = strings.TrimSpace(w)
		switch {
		case w == "" || w == "-":
		case strings.HasPrefix(w, "-"):
			negative = append(negative, w[1:])
		default:
			positive = append(positive, w)
		}
	}
	return positive, negative
}
