package github

import "github.com/google/uuid"

// StateToken derives the anti-forgery state parameter for a redirect
// target. It is a name-based UUID (v5) over the redirect URI rather
// than a random value: the same redirect target always maps to the
// same state, so a reopened or reloaded callback tab reconstructs the
// value it needs to round-trip.
func StateToken(redirectURI string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(redirectURI)).String()
}
