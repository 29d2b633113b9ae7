package api

import "net/http"

// authTransport attaches the bearer token to every outgoing request. With
// no token available the request passes through unmodified, so the same
// channel serves guest traffic before login.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base.RoundTrip(req)
}
