package hashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"
)

func TestItemMsg(t *testing.T) {
	in := Item{Key: "Alice", Value: -25}
	bts, err := in.MarshalMsg(nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(bts), in.Msgsize())

	var out Item
	left, err := out.UnmarshalMsg(bts)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Equal(t, in, out)
}

func TestSnapshotRestore(t *testing.T) {
	assert := assert.New(t)

	hm, err := New(10)
	require.NoError(t, err)
	for i, name := range names {
		require.NoError(t, hm.Put(name, i))
	}

	bts, err := hm.MarshalMsg(nil)
	require.NoError(t, err)
	assert.LessOrEqual(len(bts), hm.Msgsize())

	restored, err := Restore(bts)
	require.NoError(t, err)
	assert.Equal(hm.Floor(), restored.Floor())
	assert.Equal(hm.Cap(), restored.Cap())
	assert.ElementsMatch(hm.Items(), restored.Items())
	checkStructure(t, restored)

	// the restored map is independent and fully functional
	require.NoError(t, restored.Remove("Alice"))
	assert.True(hm.Contains("Alice"))
}

func TestSnapshotKeepsOptions(t *testing.T) {
	var resized bool
	hm, err := New(2)
	require.NoError(t, err)
	for _, name := range names {
		require.NoError(t, hm.Put(name, 1))
	}
	bts, err := hm.MarshalMsg(nil)
	require.NoError(t, err)

	restored, err := Restore(bts, WithKeyFold(XXHash), WithResizeHook(func(int, int) { resized = true }))
	require.NoError(t, err)
	assert.True(t, resized)
	assert.Equal(t, len(names), restored.Len())
	checkStructure(t, restored)
}

func TestSnapshotSkipsUnknownFields(t *testing.T) {
	bts := msgp.AppendMapHeader(nil, 3)
	bts = msgp.AppendString(bts, "version")
	bts = msgp.AppendInt(bts, 2)
	bts = msgp.AppendString(bts, "floor")
	bts = msgp.AppendInt(bts, 4)
	bts = msgp.AppendString(bts, "items")
	bts = msgp.AppendArrayHeader(bts, 1)
	bts, err := Item{Key: "Bob", Value: 10}.MarshalMsg(bts)
	require.NoError(t, err)

	hm, err := Restore(bts)
	require.NoError(t, err)
	v, ok := hm.Get("Bob")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 4, hm.Floor())
}

func TestSnapshotErrors(t *testing.T) {
	assert := assert.New(t)

	bts := msgp.AppendMapHeader(nil, 2)
	bts = msgp.AppendString(bts, "floor")
	bts = msgp.AppendInt(bts, 0)
	bts = msgp.AppendString(bts, "items")
	bts = msgp.AppendArrayHeader(bts, 0)
	_, err := Restore(bts)
	assert.ErrorIs(err, ErrInvalidCapacity)

	_, err = Restore([]byte{0xc1})
	assert.Error(err)

	hm, err := New(4)
	require.NoError(t, err)
	require.NoError(t, hm.Put("Alice", 1))
	good, err := hm.MarshalMsg(nil)
	require.NoError(t, err)
	_, err = Restore(good[:len(good)-2])
	assert.Error(err)

	hm.Destroy()
	_, err = hm.MarshalMsg(nil)
	assert.ErrorIs(err, ErrDestroyed)
	_, err = hm.UnmarshalMsg(good)
	assert.ErrorIs(err, ErrDestroyed)
}

func TestSnapshotRejectsOversizedItemCount(t *testing.T) {
	bts := msgp.AppendMapHeader(nil, 2)
	bts = msgp.AppendString(bts, "floor")
	bts = msgp.AppendInt(bts, 4)
	bts = msgp.AppendString(bts, "items")
	bts = msgp.AppendArrayHeader(bts, 0xfffffff0)

	hm, err := Restore(bts)
	assert.ErrorIs(t, err, msgp.ErrShortBytes)
	assert.Nil(t, hm)
}

func TestSnapshotOfZeroValue(t *testing.T) {
	var hm HashMap
	bts, err := hm.MarshalMsg(nil)
	require.NoError(t, err)

	restored, err := Restore(bts)
	require.NoError(t, err)
	assert.Equal(t, 1, restored.Floor())
	assert.Equal(t, 0, restored.Len())
}
