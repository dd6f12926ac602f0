package preamble

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// CheckYAML decodes the block body as a YAML mapping. The tolerant scanner
// accepts text that real YAML loaders reject (unquoted colons in values,
// repeated keys); this reports the first such problem.
func (p *Preamble) CheckYAML() error {
	var out map[string]interface{}
	dec := yaml.NewDecoder(strings.NewReader(p.Body))
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
