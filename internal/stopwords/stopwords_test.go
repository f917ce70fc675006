package stopwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New("The", "and")
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("and"))
	assert.False(t, s.Contains("game"))
	assert.Equal(t, 2, s.Len())
}

func TestDefault_CommonWords(t *testing.T) {
	s := Default()
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("and"))
	assert.True(t, s.Contains("of"))
	assert.False(t, s.Contains("love"))
	assert.Greater(t, s.Len(), 100)
}

func TestFromReader(t *testing.T) {
	s, err := FromReader(strings.NewReader("# comment\nthe\n\nAnd\n  of  \n"))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("and"))
	assert.True(t, s.Contains("of"))
	assert.False(t, s.Contains("# comment"))
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile("testdata/absent.txt")
	require.Error(t, err)
}
