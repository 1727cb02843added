package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	client := New(Options{})
	assert.Equal(t, 180*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 15*time.Second, transport.TLSHandshakeTimeout)
}

func TestNewHonorsTimeouts(t *testing.T) {
	client := New(Options{
		Timeout:     90 * time.Second,
		DialTimeout: 5 * time.Second,
	})
	assert.Equal(t, 90*time.Second, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, transport.TLSHandshakeTimeout)
}
