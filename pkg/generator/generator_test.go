package generator_test

import (
	"strings"
	"testing"

	"compositions/pkg/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomID(t *testing.T) {
	id, err := generator.NewSessionID()
	require.NoError(t, err)
	assert.Len(t, id, generator.SessionIDLen)

	for _, c := range id {
		assert.True(t, strings.ContainsRune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", c))
	}

	other, err := generator.NewSessionID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	_, err = generator.GenerateRandomID(0)
	assert.Error(t, err)
}
