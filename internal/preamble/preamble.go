// Package preamble extracts the leading key/value block ("frontmatter") of
// agent and skill markdown documents.
//
// The scanner is intentionally narrower than YAML: one "key: value" pair per
// line, no nesting, no block scalars, no quoting rules. Anything else inside
// the block is skipped rather than rejected.
package preamble

import (
	"errors"
	"strings"
)

// Delimiter is the marker line that opens and closes a preamble block.
const Delimiter = "---"

// ErrNoPreamble is returned when a document does not start with a bounded
// delimiter block.
var ErrNoPreamble = errors.New("no frontmatter found")

// Preamble is the parsed key/value block of a document.
type Preamble struct {
	keys   []string
	values map[string]string

	// Duplicates lists keys that appeared more than once, in the order the
	// repeats were seen. The last value wins.
	Duplicates []string

	// Body is the raw text between the delimiters.
	Body string
}

// Get returns the value for key and whether the key was present.
func (p *Preamble) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Has reports whether key is present with a non-empty value.
func (p *Preamble) Has(key string) bool {
	return p.values[key] != ""
}

// Keys returns the keys in first-seen order.
func (p *Preamble) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of distinct keys.
func (p *Preamble) Len() int {
	return len(p.keys)
}

func (p *Preamble) set(key, value string) {
	if _, exists := p.values[key]; exists {
		p.Duplicates = append(p.Duplicates, key)
	} else {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

type scanState int

const (
	stateBefore scanState = iota
	stateInside
)

// Parse scans content for a leading preamble block.
//
// The first line must be the delimiter and the block ends at the next line
// consisting solely of the delimiter. A missing opening or closing delimiter
// yields ErrNoPreamble; an empty block yields an empty, non-nil Preamble.
func Parse(content string) (*Preamble, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	p := &Preamble{values: make(map[string]string)}
	state := stateBefore
	var body []string

	for i, line := range lines {
		switch state {
		case stateBefore:
			if i != 0 || !isDelimiter(line) {
				return nil, ErrNoPreamble
			}
			state = stateInside
		case stateInside:
			if isDelimiter(line) {
				p.Body = strings.Join(body, "\n")
				return p, nil
			}
			body = append(body, line)
			parseLine(p, line)
		}
	}

	return nil, ErrNoPreamble
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t") == Delimiter
}

func parseLine(p *Preamble, line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	key, value, found := strings.Cut(line, ":")
	if !found {
		return
	}
	p.set(strings.TrimSpace(key), strings.TrimSpace(value))
}
