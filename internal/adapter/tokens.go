package adapter

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeTokens turns build tool stdout into whitespace separated tokens.
// A leading BOM selects UTF-8 or UTF-16; anything else must be valid UTF-8.
func decodeTokens(raw []byte) ([]string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(encoding.UTF8Validator), raw)
	if err != nil {
		return nil, fmt.Errorf("decode tool output: %w", err)
	}

	return strings.Fields(string(decoded)), nil
}
