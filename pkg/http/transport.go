package http

import "net/http"

// Transport lets clients that only accept an *http.Client send through an HTTPClient such as RetryingClient
type Transport struct {
	Client HTTPClient
}

func (t Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// the retrying client swaps the body between attempts
	return t.Client.Do(req.Clone(req.Context()))
}

// NewStdClient wraps client in an *http.Client
func NewStdClient(client HTTPClient) *http.Client {
	return &http.Client{Transport: Transport{Client: client}}
}
