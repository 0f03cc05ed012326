package thumbnail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDerivativeKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"owners/42/plant/7/abc-123.jpg", false},
		{"owners/42/plant/7/thumb-64/abc-123.webp", true},
		{"owners/42/plant/7/thumb-400/abc.jpg", true},
		{"thumb-64/abc.webp", true},
		{"owners/42/plant/7/thumbnail.jpg", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDerivativeKey(tt.key))
		})
	}
}

func TestIsSupportedExtension(t *testing.T) {
	assert.True(t, IsSupportedExtension("a/b.jpg"))
	assert.True(t, IsSupportedExtension("a/b.JPEG"))
	assert.True(t, IsSupportedExtension("a/b.png"))
	assert.True(t, IsSupportedExtension("a/b.webp"))
	assert.False(t, IsSupportedExtension("a/b.gif"))
	assert.False(t, IsSupportedExtension("a/b"))
}

func TestParseOriginalKey(t *testing.T) {
	p, err := ParseOriginalKey("owners/42/plant/7/abc-123.jpg")
	require.NoError(t, err)
	assert.Equal(t, OwnerPath{
		OwnerID:    "42",
		EntityType: "plant",
		EntityID:   "7",
		InstanceID: "abc-123",
		Extension:  ".jpg",
		Dir:        "owners/42/plant/7",
	}, p)
}

func TestParseOriginalKey_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want error
	}{
		{"WrongRoot", "notusers/x.jpg", ErrInvalidKeyStructure},
		{"TooShort", "owners/42/plant/x.jpg", ErrInvalidKeyStructure},
		{"EmptyOwner", "owners//plant/7/x.jpg", ErrInvalidKeyStructure},
		{"EmptyInstance", "owners/42/plant/7/.jpg", ErrInvalidKeyStructure},
		{"Unsupported", "owners/42/plant/7/x.gif", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOriginalKey(tt.key)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var ke *KeyError
			require.ErrorAs(t, err, &ke)
			assert.Equal(t, tt.key, ke.Key)
		})
	}
}

func TestParseOriginalKey_CustomRoot(t *testing.T) {
	_, err := parseOriginalKey("users/1/pet/2/a.png", "users")
	assert.NoError(t, err)

	_, err = parseOriginalKey("owners/1/pet/2/a.png", "users")
	assert.ErrorIs(t, err, ErrInvalidKeyStructure)
}

func TestDerivativeKey(t *testing.T) {
	assert.Equal(t, "owners/42/plant/7/thumb-64/abc-123.webp",
		DerivativeKey("owners/42/plant/7/abc-123.jpg", "thumb-64"))
	assert.Equal(t, "owners/42/plant/7/thumb-400/abc.webp",
		DerivativeKey("owners/42/plant/7/abc.PNG", "thumb-400"))
	assert.Equal(t, "thumb-64/a.webp", DerivativeKey("a.jpg", "thumb-64"))
}

func TestDerivativeKeysAreDerivatives(t *testing.T) {
	for _, k := range VariantKeys("owners/42/plant/7/abc-123.jpg") {
		assert.True(t, IsDerivativeKey(k), k)
	}
}

func TestVariantKeys(t *testing.T) {
	keys := VariantKeys("owners/1/pet/2/x.jpeg")
	assert.Equal(t, []string{
		"owners/1/pet/2/thumb-64/x.webp",
		"owners/1/pet/2/thumb-200/x.webp",
		"owners/1/pet/2/thumb-300/x.webp",
		"owners/1/pet/2/thumb-400/x.webp",
	}, keys)
}
