package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	repos, err := Open(context.Background(), "memory://", time.Second)
	require.NoError(t, err)

	assert.Equal(t, "memory", repos.Backend)
	assert.NotNil(t, repos.Users)
	assert.NotNil(t, repos.Animals)
	assert.NotNil(t, repos.Training)
	assert.NoError(t, repos.Close(context.Background()))
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	for _, uri := range []string{"mysql://localhost/db", "", "::not a uri"} {
		_, err := Open(context.Background(), uri, time.Second)
		assert.ErrorIs(t, err, ErrUnsupportedScheme, "uri %q", uri)
	}
}

func TestURIScheme(t *testing.T) {
	assert.Equal(t, "mongodb+srv", uriScheme("mongodb+srv://cluster0.example.net/training"))
	assert.Equal(t, "postgresql", uriScheme("PostgreSQL://u:p@localhost:5432/training"))
}
