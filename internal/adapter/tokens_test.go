package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTokens(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []string
	}{
		{name: "plain", raw: []byte("OPT_A OPT_B\n"), want: []string{"OPT_A", "OPT_B"}},
		{name: "mixed whitespace", raw: []byte("  x\ty\n\nz "), want: []string{"x", "y", "z"}},
		{name: "empty", raw: []byte(""), want: []string{}},
		{name: "utf8 bom", raw: []byte("\xef\xbb\xbfOPT_A"), want: []string{"OPT_A"}},
		{name: "utf16 le bom", raw: []byte{0xff, 0xfe, 'a', 0, ' ', 0, 'b', 0}, want: []string{"a", "b"}},
		{name: "non ascii", raw: []byte("fréquence 50Hz"), want: []string{"fréquence", "50Hz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeTokens(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeTokens_InvalidUTF8(t *testing.T) {
	_, err := decodeTokens([]byte("OPT_A \xff\xfe\xfd"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tool output")
}
