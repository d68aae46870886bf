// Package sstable reads and writes word vectors in the plain text
// format
//
//	<vocabulary size> <dimension>
//	<word> <v0> <v1> ... <vdim-1>
//
// with one line per word.
package sstable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/xjzhou/word2vec/matrix"
)

// WriteVectors writes texts[i] followed by vectors[i] for every i, in
// the given order. Every vector must have the same length.
func WriteVectors(w io.Writer, texts []string, vectors [][]float32) error {
	if len(texts) != len(vectors) {
		return fmt.Errorf("sstable: %d words but %d vectors", len(texts), len(vectors))
	}
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}

	out := bufio.NewWriter(w)
	// write the matrix shape
	fmt.Fprintf(out, "%d %d\n", len(texts), dim)

	buf := make([]byte, 0, 32)
	for i, text := range texts {
		if len(vectors[i]) != dim {
			return fmt.Errorf("sstable: vector of %q has %d values, want %d",
				text, len(vectors[i]), dim)
		}
		out.WriteString(text)
		for _, val := range vectors[i] {
			buf = append(buf[:0], ' ')
			buf = strconv.AppendFloat(buf, float64(val), 'g', -1, 32)
			out.Write(buf)
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

// serialize vectors to file
func SaveVectors(fn string, texts []string, vectors [][]float32) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if err := WriteVectors(out, texts, vectors); err != nil {
		out.Close()
		return fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	return nil
}

// ReadVectors parses the vector format. The returned matrix has one row
// per word, in file order. Any unparsable header, missing line or line
// with fewer values than the header dimension yields ErrMalformedFile,
// and so does a word listed twice.
func ReadVectors(r io.Reader) ([]string, *matrix.Float32Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
		}
		return nil, nil, fmt.Errorf("%w: empty file", ErrMalformedFile)
	}
	shape := strings.Fields(scanner.Text())
	if len(shape) != 2 {
		return nil, nil, fmt.Errorf("%w: shape not found: %q", ErrMalformedFile, scanner.Text())
	}
	row, err := strconv.ParseUint(shape[0], 10, 32)
	if err != nil || row == 0 {
		return nil, nil, fmt.Errorf("%w: bad vocabulary size %q", ErrMalformedFile, shape[0])
	}
	col, err := strconv.ParseUint(shape[1], 10, 32)
	if err != nil || col == 0 {
		return nil, nil, fmt.Errorf("%w: bad dimension %q", ErrMalformedFile, shape[1])
	}

	texts := make([]string, 0, row)
	seen := make(map[string]struct{}, row)
	m := matrix.NewFloat32Matrix(uint32(row), uint32(col))
	for ridx := uint32(0); ridx < uint32(row); ridx += 1 {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
			}
			return nil, nil, fmt.Errorf("%w: expected %d words, found %d",
				ErrMalformedFile, row, ridx)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < int(col)+1 {
			return nil, nil, fmt.Errorf("%w: line %d has %d values, want %d",
				ErrMalformedFile, ridx+2, len(fields)-1, col)
		}
		if _, ok := seen[fields[0]]; ok {
			return nil, nil, fmt.Errorf("%w: line %d: duplicate word %q",
				ErrMalformedFile, ridx+2, fields[0])
		}
		seen[fields[0]] = struct{}{}
		texts = append(texts, fields[0])
		vals := m.Row(ridx)
		for cidx := range vals {
			val, err := strconv.ParseFloat(fields[cidx+1], 32)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedFile, ridx+2, err)
			}
			vals[cidx] = float32(val)
		}
		if len(fields) > int(col)+1 {
			log.Warningf("line %d has %d extra values, ignored", ridx+2, len(fields)-int(col)-1)
		}
	}
	return texts, m, nil
}

// deserialize vectors from file
func LoadVectors(fn string) ([]string, *matrix.Float32Matrix, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}
	defer file.Close()
	return ReadVectors(file)
}
