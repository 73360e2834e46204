package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImages_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Images
	}{
		{name: "array", input: `["image1.jpg","image2.jpg"]`, expected: Images{"image1.jpg", "image2.jpg"}},
		{name: "single string", input: `"updated-image.jpg"`, expected: Images{"updated-image.jpg"}},
		{name: "comma separated string", input: `"a.png, b.png"`, expected: Images{"a.png", "b.png"}},
		{name: "null", input: `null`, expected: nil},
		{name: "empty string", input: `""`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var images Images
			require.NoError(t, json.Unmarshal([]byte(tt.input), &images))
			assert.Equal(t, tt.expected, images)
		})
	}
}

func TestImages_UnmarshalJSON_InvalidType(t *testing.T) {
	var images Images
	err := json.Unmarshal([]byte(`42`), &images)
	assert.Error(t, err)
}

func TestImages_ValueAndScan(t *testing.T) {
	images := Images{"image1.jpg", "image2.jpg"}

	value, err := images.Value()
	require.NoError(t, err)
	assert.Equal(t, "image1.jpg,image2.jpg", value)

	var scanned Images
	require.NoError(t, scanned.Scan([]byte("image1.jpg,image2.jpg")))
	assert.Equal(t, images, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	empty, err := Images{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	assert.Error(t, scanned.Scan(12))
}

func TestPost_MarshalJSON(t *testing.T) {
	post := Post{ID: 1, Title: "t", Description: "d", UserID: 2, Images: Images{"a.jpg", "b.jpg"}}

	data, err := json.Marshal(post)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"t","description":"d","user_id":2,"images":"a.jpg,b.jpg"}`, string(data))
}

func TestParseImages(t *testing.T) {
	assert.Equal(t, Images{"a.png", "b.png"}, ParseImages(" a.png ,, b.png ,"))
	assert.Nil(t, ParseImages(""))
	assert.Empty(t, ParseImages("   "))
}
