package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetModel(t *testing.T) {
	ctor, err := GetModel("skipgram")
	require.NoError(t, err)
	m := ctor(DefaultConfig())
	_, ok := m.(*Word2Vec)
	assert.True(t, ok)

	_, err = GetModel("cbow")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []func(c *Config){
		func(c *Config) { c.Size = 0 },
		func(c *Config) { c.Window = 0 },
		func(c *Config) { c.BatchSize = -1 },
		func(c *Config) { c.Alpha = -0.1 },
		func(c *Config) { c.MinAlpha = -0.1 },
	}
	for i, mutate := range bad {
		c := DefaultConfig()
		mutate(&c)
		assert.Error(t, c.Validate(), "case %d", i)
	}
}
