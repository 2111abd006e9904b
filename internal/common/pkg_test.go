package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := map[string]string{
		"":                             "",
		"time":                         "time",
		"net/http":                     "http",
		"example.com/api/v1":           "api",
		"gopkg.in/yaml.v3":             "yaml",
		"github.com/mattn/go-isatty":   "isatty",
		"github.com/charmbracelet/log": "log",
		"example.com/v":                "v",
	}

	for path, want := range tests {
		assert.Equal(t, want, PkgAlias(path), path)
	}
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First[[]string](nil)
	assert.False(t, ok)
	assert.Empty(t, v)
}
