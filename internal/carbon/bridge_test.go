package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTipBridgePersist(t *testing.T) {
	store := &fakeTips{}
	bridge := NewTipBridge(store)

	in := []Advisory{
		{Text: "a", Category: "energy"},
		{Text: "a", Category: "energy"},
		{Text: "b", Category: "food"},
	}
	out, err := bridge.Persist("user-1", in)
	require.NoError(t, err)
	assert.Equal(t, in, out, "returns the advisories, not the persisted tips")

	require.Len(t, store.created, 3)
	for i, tip := range store.created {
		assert.Equal(t, "user-1", tip.UserID)
		assert.Equal(t, in[i].Text, tip.Text)
		assert.Equal(t, in[i].Category, tip.Category)
		assert.NotEmpty(t, tip.ID)
	}
	assert.NotEqual(t, store.created[0].ID, store.created[1].ID)
}

func TestTipBridgePartialFailureKeepsEarlierInserts(t *testing.T) {
	store := &fakeTips{failAt: 2}
	bridge := NewTipBridge(store)

	_, err := bridge.Persist("user-1", []Advisory{{Text: "a"}, {Text: "b"}, {Text: "c"}})
	require.ErrorIs(t, err, errStore)
	require.Len(t, store.created, 1)
	assert.Equal(t, "a", store.created[0].Text)
}

func TestTipBridgeEmpty(t *testing.T) {
	store := &fakeTips{}
	out, err := NewTipBridge(store).Persist("user-1", []Advisory{})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, store.created)
}
