package hashmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	hm, err := New(4, WithKeyFold(zeroFold))
	require.NoError(t, err)
	require.NoError(t, hm.Put("a", 1))
	require.NoError(t, hm.Put("b", 2))

	var buf bytes.Buffer
	require.NoError(t, hm.Describe(&buf))
	assert.Equal(t, " 0 | {b,2} -> {a,1}\n 1 | \n 2 | \n 3 | \n", buf.String())
}

func TestTraverse(t *testing.T) {
	assert := assert.New(t)

	hm, err := New(8, WithKeyFold(zeroFold))
	require.NoError(t, err)
	assert.Equal("{ } : 0.00", hm.String())

	require.NoError(t, hm.Put("a", 1))
	require.NoError(t, hm.Put("b", 2))

	var buf bytes.Buffer
	require.NoError(t, hm.Traverse(&buf))
	assert.Equal("{ b:2 a:1 } : 0.25\n", buf.String())
}

func TestDescribeListsEveryBucket(t *testing.T) {
	hm, err := New(10)
	require.NoError(t, err)
	for i, name := range names {
		require.NoError(t, hm.Put(name, i))
	}

	var buf bytes.Buffer
	require.NoError(t, hm.Describe(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, hm.Cap())
	for _, name := range names {
		assert.Contains(t, buf.String(), "{"+name+",")
	}
}
