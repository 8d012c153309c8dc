package ingest

import (
	"strings"
	"unicode/utf8"
)

// decodeText decodes bytes as UTF-8, dropping invalid byte sequences.
// This is a deliberate best-effort policy: uploads are accepted even when
// partially binary, and the decode never fails.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			b = b[1:]
			continue
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
