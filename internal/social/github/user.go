package github

import "social-login/internal/social"

// GenerateUser maps a successful probe response into the canonical
// user record. GitHub exposes a single display name, so FirstName and
// LastName both carry it, and GitHub tokens have no TTL, so the token
// never expires. Feeding a payload not produced by CheckLogin is a
// caller bug, not a handled error.
func (a *Adapter) GenerateUser(response any) *social.User {
	viewer := response.(*ViewerResponse).Data.Viewer

	return &social.User{
		Profile: social.Profile{
			ID:            viewer.ID,
			Name:          viewer.Name,
			FirstName:     viewer.Name,
			LastName:      viewer.Name,
			Email:         viewer.Email,
			ProfilePicURL: viewer.AvatarURL,
		},
		Token: social.Token{
			AccessToken: a.bearerToken(),
		},
	}
}
