package vocab

import "errors"

var ErrVocabularyTooSmall = errors.New("vocab: fewer than 2 distinct words survive filtering")
