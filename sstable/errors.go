package sstable

import "errors"

var ErrMalformedFile = errors.New("sstable: malformed vector file")
