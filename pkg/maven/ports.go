package maven

import "context"

// URLFetcher is the transport capability the resolver consumes. The default
// implementation lives in the fetch package; tests substitute fakes.
//
// Both methods fail with a FILE_NOT_FOUND error when the resource is absent
// (HTTP 404) and a NETWORK_ERROR otherwise. The resolver relies on that
// distinction for its repository and packaging fallback.
type URLFetcher interface {
	// Fetch performs a GET and returns the body decoded as UTF-8 text.
	Fetch(ctx context.Context, url string) (string, error)

	// FetchBytes performs a GET and returns the raw body.
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// POMParser turns a POM XML document into a raw [Project]. The parser does
// not normalize: partial coordinates and missing scopes are preserved for
// the resolver to fill in. Ill-formed input fails with INVALID_POM.
type POMParser interface {
	Parse(data []byte) (*Project, error)
}
