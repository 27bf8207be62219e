package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strref"
	"go.trai.ch/strref/internal/core/domain"
)

func TestFileConfig_ReleasesIgnoreOnInvalid(t *testing.T) {
	line := strref.Copy("// Code generated. DO NOT EDIT.")
	defer line.Release()

	top := -1
	f := &File{Top: &top, Ignore: []strref.Str{line.Clone()}}
	require.Equal(t, int64(2), line.Refs())

	cfg, err := f.config()
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Nil(t, cfg)
	assert.Nil(t, f.Ignore)
	assert.Equal(t, int64(1), line.Refs())
}

func TestFileConfig_MovesIgnore(t *testing.T) {
	line := strref.Copy("// Code generated. DO NOT EDIT.")
	defer line.Release()

	f := &File{Ignore: []strref.Str{line.Clone()}}

	cfg, err := f.config()
	require.NoError(t, err)
	require.Len(t, cfg.Ignore, 1)
	assert.Nil(t, f.Ignore)
	assert.Equal(t, int64(2), line.Refs())

	cfg.Release()
	assert.Equal(t, int64(1), line.Refs())
}

func TestFileRelease(t *testing.T) {
	line := strref.Copy("a partially decoded ignore line")
	defer line.Release()

	f := &File{Ignore: []strref.Str{line.Clone(), strref.Lit("#")}}
	f.release()

	assert.Nil(t, f.Ignore)
	assert.Equal(t, int64(1), line.Refs())
}
