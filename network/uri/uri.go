// Package uri builds absolute URLs from base addresses, ports, relative
// references and schemes.
package uri

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultScheme is applied by SetScheme when no scheme is given and by
// AddPort when the base address has none.
const DefaultScheme = "http"

var (
	// ErrInvalidPort is returned for ports outside [0, 65535].
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidScheme is returned for schemes that are not RFC 3986 compliant.
	ErrInvalidScheme = errors.New("invalid scheme")
)

// AddPort returns base with its port replaced by port. A base without a
// scheme is treated as a host name, so "example" becomes "http://example:port".
func AddPort(base string, port int) (*url.URL, error) {
	if port < 0 || port > 65535 {
		return nil, errors.Wrapf(ErrInvalidPort, "port %d", port)
	}
	if !strings.Contains(base, "://") {
		base = DefaultScheme + "://" + base
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base uri %q", base)
	}
	if u.Hostname() == "" {
		return nil, errors.Errorf("base uri %q has no host", base)
	}
	u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(port))
	return u, nil
}

// Join resolves relative against base. base is treated as a directory: a
// trailing slash is added when missing, so Join("http://a/b", "c") is
// "http://a/b/c" rather than "http://a/c".
func Join(base, relative string) (*url.URL, error) {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	b, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base uri %q", base)
	}
	if !b.IsAbs() {
		return nil, errors.Errorf("base uri %q is not absolute", base)
	}
	r, err := url.Parse(relative)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse relative uri %q", relative)
	}
	return b.ResolveReference(r), nil
}

// JoinURL is Join for an already parsed base.
func JoinURL(base *url.URL, relative string) (*url.URL, error) {
	if base == nil {
		return nil, errors.New("nil base uri")
	}
	return Join(base.String(), relative)
}

// SetScheme returns a copy of u using scheme. An empty scheme means
// DefaultScheme. Schemes are case-insensitive and returned in lower case.
func SetScheme(u *url.URL, scheme string) (*url.URL, error) {
	if u == nil {
		return nil, errors.New("nil base uri")
	}
	if scheme == "" {
		scheme = DefaultScheme
	}
	scheme = strings.ToLower(scheme)
	if !validScheme(scheme) {
		return nil, errors.Wrapf(ErrInvalidScheme, "%q", scheme)
	}
	res := *u
	res.Scheme = scheme
	return &res, nil
}

// validScheme reports whether s matches ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func validScheme(s string) bool {
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
		case i > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return s != ""
}
