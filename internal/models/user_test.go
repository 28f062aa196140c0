package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserString(t *testing.T) {
	user := &User{ID: 1, Username: "testuser", Email: "test@test.com"}
	assert.Equal(t, "<User #1: testuser, test@test.com>", user.String())
}

func TestUserBeforeCreateDefaults(t *testing.T) {
	t.Run("Fills Placeholders", func(t *testing.T) {
		user := &User{Username: "testuser", Email: "test@test.com", Password: "hashed"}
		require.NoError(t, user.BeforeCreate(nil))
		assert.Equal(t, DefaultImageURL, user.ImageURL)
		assert.Equal(t, DefaultHeaderImageURL, user.HeaderImageURL)
	})

	t.Run("Keeps Supplied Images", func(t *testing.T) {
		user := &User{
			Username:       "testuser",
			Email:          "test@test.com",
			Password:       "hashed",
			ImageURL:       "https://example.com/me.png",
			HeaderImageURL: "https://example.com/header.png",
		}
		require.NoError(t, user.BeforeCreate(nil))
		assert.Equal(t, "https://example.com/me.png", user.ImageURL)
		assert.Equal(t, "https://example.com/header.png", user.HeaderImageURL)
	})
}

func TestUserJSONHidesPassword(t *testing.T) {
	user := &User{ID: 1, Username: "testuser", Password: "$2b$12$hash"}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2b$12$hash")
	assert.NotContains(t, string(raw), "password")
}
