package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityKeyDistinguishesCustomizations(t *testing.T) {
	c1 := &Customization{Size: "M", Color: "red", CustomText: "Happy Birthday"}
	c2 := &Customization{Size: "M", Color: "blue", CustomText: "Happy Birthday"}

	assert.NotEqual(t, IdentityKey(7, c1), IdentityKey(7, c2))
}

func TestIdentityKeyMergesEqualCustomizations(t *testing.T) {
	c1 := &Customization{Size: "L", Color: "black", Images: []string{"https://cdn/x.png"}}
	c2 := &Customization{Size: "L", Color: "black", Images: []string{"https://cdn/x.png"}}

	assert.Equal(t, IdentityKey(7, c1), IdentityKey(7, c2))
}

func TestIdentityKeyDistinguishesProducts(t *testing.T) {
	c := &Customization{Size: "M"}
	assert.NotEqual(t, IdentityKey(1, c), IdentityKey(2, c))
}

func TestIdentityKeyNilAndEmptyCustomizationAgree(t *testing.T) {
	// A nil customization and an all-empty one describe the same stock line.
	assert.Equal(t, IdentityKey(3, nil), IdentityKey(3, &Customization{}))
}

func TestIdentityKeyImageOrderMatters(t *testing.T) {
	c1 := &Customization{Images: []string{"a.png", "b.png"}}
	c2 := &Customization{Images: []string{"b.png", "a.png"}}

	assert.NotEqual(t, IdentityKey(5, c1), IdentityKey(5, c2))
}

func TestCustomizationScanRoundTrip(t *testing.T) {
	original := &Customization{Size: "XL", Color: "green", CustomText: "TRX", Images: []string{"a.png"}}

	value, err := original.Value()
	assert.NoError(t, err)

	var decoded Customization
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, *original, decoded)
}

func TestCustomizationScanRejectsGarbage(t *testing.T) {
	var decoded Customization
	assert.Error(t, decoded.Scan([]byte("not json")))
	assert.Error(t, decoded.Scan(42))
}

func TestZeroCustomizationStoresNull(t *testing.T) {
	var empty *Customization
	value, err := empty.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = (&Customization{}).Value()
	assert.NoError(t, err)
	assert.Nil(t, value)
}
