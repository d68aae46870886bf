package vocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xjzhou/word2vec/corpus"
)

func sentences(lines ...[]string) []*corpus.Sentence {
	return corpus.FromTokens(lines).Sentences
}

func TestBuildSmallCorpus(t *testing.T) {
	v, err := Build(sentences(
		[]string{"a", "b", "c"},
		[]string{"b", "c", "d"},
	), 0)
	require.NoError(t, err)

	require.Equal(t, 4, v.Len())
	expected := map[string]uint32{"a": 1, "b": 2, "c": 2, "d": 1}
	for text, count := range expected {
		w, ok := v.Lookup(text)
		require.True(t, ok, text)
		assert.Equal(t, count, w.Count, text)
	}
	assert.Equal(t, uint64(6), v.TotalCount())

	// indices are contiguous and match positions
	for i, w := range v.Words() {
		assert.Equal(t, int32(i), w.Index)
		assert.Same(t, w, v.Word(int32(i)))
	}

	require.NotNil(t, v.Tree())
	assert.Equal(t, 3, v.Tree().InternalNum())
}

func TestBuildMinCountBoundary(t *testing.T) {
	// x: 2, y: 3, z: 3
	v, err := Build(sentences(
		[]string{"x", "y", "z"},
		[]string{"x", "y", "z"},
		[]string{"y", "z"},
	), 2)
	require.NoError(t, err)

	assert.False(t, v.Has("x"), "count equal to min_count is excluded")
	assert.True(t, v.Has("y"))
	assert.True(t, v.Has("z"))
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, uint64(6), v.TotalCount())
}

func TestBuildTooSmall(t *testing.T) {
	_, err := Build(sentences([]string{"a", "a", "a"}), 1)
	assert.True(t, errors.Is(err, ErrVocabularyTooSmall))

	_, err = Build(sentences([]string{"a", "b", "b"}), 1)
	assert.ErrorIs(t, err, ErrVocabularyTooSmall)

	_, err = Build(nil, 0)
	assert.ErrorIs(t, err, ErrVocabularyTooSmall)
}

func TestResolve(t *testing.T) {
	v, err := Build(sentences(
		[]string{"a", "b", "a", "b", "rare"},
	), 1)
	require.NoError(t, err)

	s := corpus.NewSentence("rare", "a", "unknown", "b")
	assert.Equal(t, 2, v.Resolve(s))
	a, _ := v.Lookup("a")
	b, _ := v.Lookup("b")
	assert.Equal(t, []int32{a.Index, b.Index}, s.Words)
	assert.Equal(t, []string{"rare", "a", "unknown", "b"}, s.Tokens)

	// resolving again does not accumulate
	assert.Equal(t, 2, v.Resolve(s))
	assert.Len(t, s.Words, 2)
}

func TestByCount(t *testing.T) {
	v, err := Build(sentences(
		[]string{"a", "b", "b", "c", "c", "c"},
	), 0)
	require.NoError(t, err)

	var texts []string
	for _, w := range v.ByCount() {
		texts = append(texts, w.Text)
	}
	assert.Equal(t, []string{"c", "b", "a"}, texts)
	// the index order is untouched
	assert.Equal(t, "a", v.Word(0).Text)
}

func TestFromTexts(t *testing.T) {
	v := FromTexts([]string{"x", "y"})
	assert.Equal(t, 2, v.Len())
	assert.Nil(t, v.Tree())
	w, ok := v.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, int32(1), w.Index)
	assert.Equal(t, uint32(0), w.Count)
	assert.False(t, w.IsLeaf())
}
