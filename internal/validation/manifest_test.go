package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeManifest(t *testing.T) {
	t.Parallel()

	raw, err := DecodeManifest([]byte(`{"name": "my-plugin", "author": {"name": "Jane"}}`))
	require.NoError(t, err)
	assert.Equal(t, "my-plugin", raw["name"])

	_, err = DecodeManifest([]byte(`{"name": `))
	assert.Error(t, err)

	_, err = DecodeManifest([]byte(`null`))
	assert.Error(t, err)
}

func TestManifestFromMap(t *testing.T) {
	t.Parallel()

	raw, err := DecodeManifest([]byte(`{
		"name": "my-plugin",
		"version": "1.2.0",
		"description": "Does things",
		"author": {"name": "Jane", "email": "jane@example.com"},
		"keywords": ["review", 3, "lint"],
		"license": "MIT",
		"repository": "https://example.com/repo",
		"homepage": "https://example.com"
	}`))
	require.NoError(t, err)

	assert.Equal(t, Manifest{
		Name:        "my-plugin",
		Version:     "1.2.0",
		Description: "Does things",
		AuthorName:  "Jane",
		Keywords:    []string{"review", "lint"},
		License:     "MIT",
		Repository:  "https://example.com/repo",
		Homepage:    "https://example.com",
	}, ManifestFromMap(raw))
}

func TestManifestFromMap_WrongTypes(t *testing.T) {
	t.Parallel()

	raw, err := DecodeManifest([]byte(`{"name": 5, "author": "Jane", "keywords": "x"}`))
	require.NoError(t, err)
	assert.Equal(t, Manifest{}, ManifestFromMap(raw))
}
