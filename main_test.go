package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	positive, negative := parseQuery("king, -man,woman,,-")
	assert.Equal(t, []string{"king", "woman"}, positive)
	assert.Equal(t, []string{"man"}, negative)

	positive, negative = parseQuery("")
	assert.Empty(t, positive)
	assert.Empty(t, negative)
}
