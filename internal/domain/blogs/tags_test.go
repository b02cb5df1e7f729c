package blogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsValueScan(t *testing.T) {
	in := Tags{"modern", "living room"}

	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, `["modern","living room"]`, v)

	var out Tags
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestTagsNilValue(t *testing.T) {
	var in Tags
	v, err := in.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestTagsScan(t *testing.T) {
	var tags Tags

	require.NoError(t, tags.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, Tags{"a", "b"}, tags)

	require.NoError(t, tags.Scan(nil))
	assert.Empty(t, tags)

	assert.Error(t, tags.Scan(42))
}
