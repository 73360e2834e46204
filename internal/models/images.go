package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

const imagesSeparator = ","

// Images is the list of image references attached to a post.
// It is persisted as a single comma-separated text column and
// rendered the same way in JSON responses.
type Images []string

func (i Images) String() string {
	return strings.Join(i, imagesSeparator)
}

// Value stores an empty list as NULL.
func (i Images) Value() (driver.Value, error) {
	if len(i) == 0 {
		return nil, nil
	}
	return i.String(), nil
}

func (i *Images) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = nil
	case string:
		*i = ParseImages(v)
	case []byte:
		*i = ParseImages(string(v))
	default:
		return fmt.Errorf("unsupported images column type %T", src)
	}
	return nil
}

func (i Images) MarshalJSON() ([]byte, error) {
	if i == nil {
		return []byte("null"), nil
	}
	return json.Marshal(i.String())
}

// UnmarshalJSON accepts either a JSON array of strings or a single
// (possibly comma-separated) string.
func (i *Images) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = nil
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("images: %w", err)
		}
		*i = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("images must be a string or an array of strings: %w", err)
	}
	*i = ParseImages(s)
	return nil
}

// ParseImages splits a comma-separated list, dropping blank entries.
func ParseImages(s string) Images {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, imagesSeparator)
	images := make(Images, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			images = append(images, part)
		}
	}
	return images
}
