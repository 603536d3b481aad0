package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palmdev/palmdev-prep/internal/intern"
)

func TestInventory_AddSDKFirstWins(t *testing.T) {
	inv := NewInventory(intern.New())
	first := &Root{Prefix: "/a/sdk-5", Headers: "include"}
	second := &Root{Prefix: "/b/sdk-5", Headers: "include"}

	assert.True(t, inv.AddSDK("5", first))
	assert.False(t, inv.AddSDK("5", second))

	got, ok := inv.Lookup("5")
	assert.True(t, ok)
	assert.Same(t, first, got)
	assert.Empty(t, second.Key)
}

func TestInventory_AddSDKRequiresHeaders(t *testing.T) {
	inv := NewInventory(nil)

	assert.False(t, inv.AddSDK("3", &Root{Prefix: "/a/sdk-3", Libraries: "lib"}))
	assert.Equal(t, 0, inv.Len())
}

func TestInventory_AddGeneric(t *testing.T) {
	inv := NewInventory(nil)

	assert.False(t, inv.AddGeneric(&Root{Prefix: "/empty"}))
	assert.True(t, inv.AddGeneric(&Root{Prefix: "/libs", Libraries: "lib"}))
	assert.True(t, inv.AddGeneric(&Root{Prefix: "/incs", Headers: "Incs"}))

	generic := inv.Generic()
	if assert.Len(t, generic, 2) {
		assert.Equal(t, "/libs", generic[0].Prefix)
		assert.Equal(t, "/incs", generic[1].Prefix)
	}
}

func TestInventory_SDKsSortedByKey(t *testing.T) {
	inv := inventoryWithKeys("9", "10", "3.5", "3")

	var keys []string
	for _, root := range inv.SDKs() {
		keys = append(keys, root.Key)
	}
	assert.Equal(t, []string{"10", "3", "3.5", "9"}, keys)
}
