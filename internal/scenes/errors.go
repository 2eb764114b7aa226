package scenes

import "errors"

var (
	// ErrNoScene means the content store holds no scene record to analyze.
	ErrNoScene = errors.New("no scene found")
	// ErrRetrievalFailed means a scene attachment could not be fetched.
	ErrRetrievalFailed = errors.New("document retrieval failed")
	// ErrParseFailed means a fetched attachment did not parse as a document.
	ErrParseFailed = errors.New("document parse failed")
	// ErrNoContent means extraction produced no grounding text; no generation
	// request is made in that case.
	ErrNoContent = errors.New("no scene content available")
	// ErrUpstreamUnavailable means the generation service call failed.
	ErrUpstreamUnavailable = errors.New("generation service unavailable")
	// ErrEmptyDerivation means the generation response parsed to zero questions.
	ErrEmptyDerivation = errors.New("no questions derived")
)
