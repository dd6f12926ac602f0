package validation

import (
	"fmt"

	kjson "github.com/knadh/koanf/parsers/json"
)

// requiredManifestFields must all be present at the top level of plugin.json.
var requiredManifestFields = []string{"name", "version", "description", "author"}

// Manifest is the typed view of a decoded plugin.json.
type Manifest struct {
	Name        string
	Version     string
	Description string
	AuthorName  string
	Keywords    []string
	License     string
	Repository  string
	Homepage    string
}

// DecodeManifest parses plugin.json content into a generic object.
// Content that is not a JSON object is a decode error.
func DecodeManifest(data []byte) (map[string]interface{}, error) {
	raw, err := kjson.Parser().Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("expected a JSON object at the top level")
	}
	return raw, nil
}

// checkManifestFields returns one issue per missing or malformed required
// field. prefix locates the manifest in issue text.
func checkManifestFields(raw map[string]interface{}, prefix string) []string {
	var issues issueList
	for _, field := range requiredManifestFields {
		value, ok := raw[field]
		if !ok {
			issues.addf("%s: Missing required field '%s'", prefix, field)
			continue
		}
		if field != "author" {
			continue
		}
		author, isObject := value.(map[string]interface{})
		if !isObject {
			issues.addf("%s: 'author' must be an object with 'name' field", prefix)
			continue
		}
		if _, ok := author["name"]; !ok {
			issues.addf("%s: 'author.name' is required", prefix)
		}
	}
	return issues.list()
}

// ManifestFromMap builds the typed view. Fields of the wrong type are left empty.
func ManifestFromMap(raw map[string]interface{}) Manifest {
	m := Manifest{
		Name:        stringField(raw, "name"),
		Version:     stringField(raw, "version"),
		Description: stringField(raw, "description"),
		License:     stringField(raw, "license"),
		Repository:  stringField(raw, "repository"),
		Homepage:    stringField(raw, "homepage"),
	}
	if author, ok := raw["author"].(map[string]interface{}); ok {
		m.AuthorName = stringField(author, "name")
	}
	if keywords, ok := raw["keywords"].([]interface{}); ok {
		for _, k := range keywords {
			if s, ok := k.(string); ok {
				m.Keywords = append(m.Keywords, s)
			}
		}
	}
	return m
}

func stringField(raw map[string]interface{}, key string) string {
	s, _ := raw[key].(string)
	return s
}
