package generate

import (
	"encoding/json"
	"strings"
)

// ExtractJSON locates the first well-formed JSON object or array inside
// raw model output. Models regularly wrap valid JSON in commentary or
// markdown fences despite the no-prose instruction; correction replies
// in particular tend to quote the old object inside prose. Fenced
// ```json blocks are preferred, then the first balanced span.
// Returns false if no parseable JSON span exists.
func ExtractJSON(raw string) (json.RawMessage, bool) {
	if span, ok := extractFenced(raw); ok {
		return span, true
	}
	return extractBalanced(raw)
}

func extractFenced(raw string) (json.RawMessage, bool) {
	rest := raw
	for {
		idx := strings.Index(rest, "```")
		if idx == -1 {
			return nil, false
		}
		rest = rest[idx+3:]

		lineEnd := strings.IndexByte(rest, '\n')
		if lineEnd == -1 {
			return nil, false
		}
		lang := strings.TrimSpace(rest[:lineEnd])
		body := rest[lineEnd+1:]

		closeIdx := strings.Index(body, "```")
		if closeIdx == -1 {
			return nil, false
		}

		if lang == "" || strings.EqualFold(lang, "json") {
			candidate := strings.TrimSpace(body[:closeIdx])
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), true
			}
		}
		rest = body[closeIdx+3:]
	}
}

func extractBalanced(raw string) (json.RawMessage, bool) {
	for start := 0; start < len(raw); start++ {
		open := raw[start]
		if open != '{' && open != '[' {
			continue
		}
		if end, ok := matchSpan(raw, start); ok {
			candidate := raw[start : end+1]
			if json.Valid([]byte(candidate)) {
				return json.RawMessage(candidate), true
			}
		}
	}
	return nil, false
}

// matchSpan returns the index of the bracket closing the span opened at
// start, tracking string literals and escapes.
func matchSpan(raw string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
