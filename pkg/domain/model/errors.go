package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for command authentication
var (
	ErrTokenMissing  = goerr.New("slash command token is missing")
	ErrTokenMismatch = goerr.New("slash command token does not match")
)

// Sentinel errors for query construction
var (
	ErrNoIdentifiers = goerr.New("no valid Twitch usernames or IDs found")
)

// Sentinel errors for the Twitch directory call
var (
	ErrUpstreamStatus       = goerr.New("received non-200 response from Twitch")
	ErrResponseDecode       = goerr.New("could not decode Twitch response")
	ErrDirectoryUnreachable = goerr.New("request to Twitch failed")
)

// Sentinel errors for secrets retrieval. These are configuration failures:
// the invocation aborts without producing a chat response.
var (
	ErrSecretUnavailable = goerr.New("secrets bundle is unavailable")
	ErrSecretMalformed   = goerr.New("secrets bundle is malformed")
)
