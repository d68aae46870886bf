package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	log "github.com/golang/glog"
)

// Sentence holds the raw tokens of one line of the corpus. Words is
// filled by the trainer with the vocabulary indices of the tokens that
// survived filtering; Tokens is kept so the sentence can be resolved
// again against another vocabulary.
type Sentence struct {
	Tokens []string
	Words  []int32
}

func NewSentence(tokens ...string) *Sentence {
	return &Sentence{Tokens: tokens}
}

type Corpus struct {
	Sentences []*Sentence
	TokenNum  uint64
}

// FromTokens wraps already tokenized sentences into a Corpus.
func FromTokens(sentences [][]string) *Corpus {
	c := &Corpus{}
	for _, tokens := range sentences {
		c.add(tokens)
	}
	return c
}

func (this *Corpus) add(tokens []string) {
	this.Sentences = append(this.Sentences, NewSentence(tokens...))
	this.TokenNum += uint64(len(tokens))
}

// Read loads sentences from r, one sentence per line with tokens
// separated by whitespace. Blank lines are skipped.
func (this *Corpus) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		this.add(tokens)
	}
	return scanner.Err()
}

// load training data from file, the file format should be like:
// [token token ... token]
// one sentence per line
func (this *Corpus) Load(fn string) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := this.Read(f); err != nil {
		return err
	}

	log.Infof("number of sentences %d", len(this.Sentences))
	log.Infof("number of tokens %d", this.TokenNum)
	return nil
}
