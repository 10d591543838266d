package user_test

import (
	"encoding/json"
	"strings"
	"testing"

	"compositions/pkg/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := user.HashPassword("jargon")
	require.NoError(t, err)

	assert.NotEqual(t, "jargon", hash)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, user.HashCost, cost)

	assert.True(t, user.ValidatePassword("jargon", hash))
	assert.False(t, user.ValidatePassword("jargonlift", hash))
	assert.False(t, user.ValidatePassword("jargon", "not a hash"))

	again, err := user.HashPassword("jargon")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestSerializeOmitsPassword(t *testing.T) {
	u := &user.User{
		ID:       primitive.NewObjectID(),
		Username: "Bradley",
		Email:    "brad@netsky.com",
		Password: "$2a$10$secret",
	}

	raw, err := json.Marshal(u.Serialize())
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, map[string]any{
		"id":       u.ID.Hex(),
		"username": "Bradley",
		"email":    "brad@netsky.com",
	}, body)
	assert.False(t, strings.Contains(string(raw), "secret"))
}
