package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGramMapValue(t *testing.T) {
	m := GramMap{"obsidian": 20.5}

	v, err := m.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"obsidian":20.5}`, v.(string))
}

func TestGramMapValueNil(t *testing.T) {
	var m GramMap

	v, err := m.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestGramMapScan(t *testing.T) {
	var fromBytes GramMap
	assert.NoError(t, fromBytes.Scan([]byte(`{"gold":0.5,"marble":25}`)))
	assert.InDelta(t, 0.5, fromBytes["gold"], 0.001)
	assert.InDelta(t, 25, fromBytes["marble"], 0.001)

	var fromString GramMap
	assert.NoError(t, fromString.Scan(`{"ruby":3}`))
	assert.InDelta(t, 3, fromString["ruby"], 0.001)

	var fromNil GramMap
	assert.NoError(t, fromNil.Scan(nil))
	assert.NotNil(t, fromNil)
	assert.Empty(t, fromNil)

	var fromInt GramMap
	assert.Error(t, fromInt.Scan(42))
}
