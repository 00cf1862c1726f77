package uri_test

import (
	"net/url"
	"strconv"
	"testing"

	"github.com/prysmaticlabs/kit/crypto/rand"
	"github.com/prysmaticlabs/kit/network/uri"
	"github.com/prysmaticlabs/kit/testing/assert"
	"github.com/prysmaticlabs/kit/testing/require"
)

func TestAddPort(t *testing.T) {
	tests := []struct {
		name string
		base string
		port int
		want string
	}{
		{name: "bare host", base: "baseUri", port: 1, want: "http://baseUri:1"},
		{name: "replaces port", base: "https://example.com:8443/api", port: 443, want: "https://example.com:443/api"},
		{name: "ipv6", base: "http://[::1]/", port: 8080, want: "http://[::1]:8080/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := uri.AddPort(tt.base, tt.port)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
			assert.Equal(t, strconv.Itoa(tt.port), u.Port())
		})
	}
}

func TestAddPort_Invalid(t *testing.T) {
	_, err := uri.AddPort("example.com", 65536)
	assert.ErrorIs(t, err, uri.ErrInvalidPort)
	_, err = uri.AddPort("example.com", -1)
	assert.ErrorIs(t, err, uri.ErrInvalidPort)
	_, err = uri.AddPort("http://", 80)
	assert.ErrorContains(t, "has no host", err)
}

func TestJoin(t *testing.T) {
	tests := []struct {
		base     string
		relative string
		want     string
	}{
		{base: "http://testbaseaddress", relative: "relativeUri", want: "http://testbaseaddress/relativeUri"},
		{base: "http://host/a/b", relative: "c", want: "http://host/a/b/c"},
		{base: "http://host/a/b/", relative: "c?x=1", want: "http://host/a/b/c?x=1"},
		{base: "http://host/a/b", relative: "../c", want: "http://host/a/c"},
		{base: "http://host/a", relative: "/root", want: "http://host/root"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			u, err := uri.Join(tt.base, tt.relative)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestJoin_Invalid(t *testing.T) {
	_, err := uri.Join("relative/only", "x")
	assert.ErrorContains(t, "not absolute", err)
	_, err = uri.Join("http://host", "%zz")
	assert.ErrorContains(t, "could not parse relative uri", err)
	_, err = uri.JoinURL(nil, "x")
	assert.ErrorContains(t, "nil base uri", err)
}

func TestJoinURL(t *testing.T) {
	base := createBaseURL(t)
	u, err := uri.JoinURL(base, "relativeUri")
	require.NoError(t, err)
	assert.Equal(t, base.String()+"/relativeUri", u.String())
}

func TestSetScheme(t *testing.T) {
	base := createBaseURL(t)

	u, err := uri.SetScheme(base, "HTTPS")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, base.Host, u.Host)
	assert.Equal(t, "http", base.Scheme, "input was modified")

	u, err = uri.SetScheme(u, "")
	require.NoError(t, err)
	assert.Equal(t, uri.DefaultScheme, u.Scheme)

	_, err = uri.SetScheme(base, "1http")
	assert.ErrorIs(t, err, uri.ErrInvalidScheme)
	_, err = uri.SetScheme(nil, "http")
	assert.ErrorContains(t, "nil base uri", err)
}

// createBaseURL nests several random path segments under a random host.
func createBaseURL(t *testing.T) *url.URL {
	g := rand.NewDeterministicGeneratorWithSeed(7973323)
	segment := func() string {
		s, err := g.NextStringRange(8, 16, rand.LowercaseLetter)
		require.NoError(t, err)
		return s
	}
	resourcePrefix, host, group, service := segment(), segment(), segment(), segment()
	port, err := g.IntRange(1000, 9999)
	require.NoError(t, err)

	u, err := uri.AddPort(host, port)
	require.NoError(t, err)
	u, err = uri.JoinURL(u, group)
	require.NoError(t, err)
	u, err = uri.JoinURL(u, service)
	require.NoError(t, err)
	u, err = uri.JoinURL(u, resourcePrefix)
	require.NoError(t, err)
	return u
}
