package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_ContainsCoreDatasets(t *testing.T) {
	bundle := JSON()

	for _, kind := range []string{"pokemon", "moves", "items", "trainers", "trainertypes", "encounters", "types", "abilities"} {
		data, err := fs.ReadFile(bundle, kind+".json")
		require.NoError(t, err, kind)
		assert.NotEmpty(t, data, kind)
	}
}

func TestJSON_RootedAtJSONDir(t *testing.T) {
	_, err := fs.Stat(JSON(), "json/pokemon.json")
	assert.Error(t, err)
}
