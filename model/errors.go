package model

import "errors"

var (
	ErrNoVocabulary = errors.New("model: vocabulary not built")
	ErrNotTrained   = errors.New("model: no vectors to save")
)
