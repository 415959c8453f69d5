package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache map[string][]byte

func (m mapCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m[key] = value
	return nil
}

func (m mapCache) Close() error { return nil }

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := mapCache{}

	require.NoError(t, SetJSON(ctx, c, "locations", []string{"Berlin", "Oslo"}, time.Minute))
	assert.JSONEq(t, `["Berlin","Oslo"]`, string(c["locations"]))

	var got []string
	require.NoError(t, GetJSON(ctx, c, "locations", &got))
	assert.Equal(t, []string{"Berlin", "Oslo"}, got)
}

func TestGetJSONMiss(t *testing.T) {
	var got []string
	err := GetJSON(context.Background(), mapCache{}, "missing", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetJSONMalformed(t *testing.T) {
	c := mapCache{"locations": []byte("{oops")}

	var got []string
	err := GetJSON(context.Background(), c, "locations", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "decoding locations")
}
