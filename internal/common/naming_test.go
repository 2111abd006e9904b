package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"value", "value"},
		{"Name", "name"},
		{"ID", "id"},
		{"HTTPAddr", "httpAddr"},
		{"URL2", "url2"},
		{"CreatedAt", "createdAt"},
		{"X", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LowerCamel(tt.in))
		})
	}
}

func TestSafeIdent(t *testing.T) {
	assert.Equal(t, "name", SafeIdent("name", nil))
	assert.Equal(t, "type_", SafeIdent("type", nil))
	assert.Equal(t, "func_", SafeIdent("func", nil))
	assert.Equal(t, "src_", SafeIdent("src", map[string]bool{"src": true}))
	assert.Equal(t, "src__", SafeIdent("src", map[string]bool{"src": true, "src_": true}))
}

func TestIsExported(t *testing.T) {
	assert.True(t, IsExported("Main"))
	assert.False(t, IsExported("main"))
	assert.False(t, IsExported(""))
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "Main", UpperFirst("main"))
	assert.Equal(t, "Main", UpperFirst("Main"))
	assert.Equal(t, "", UpperFirst(""))
}
