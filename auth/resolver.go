package auth

import "foodhub-api/models"

// identityPaths are the endpoints that create or prove identity. They must
// work for first-time, unauthenticated callers, and they are the only paths
// allowed to insert principal rows, so they always bind the elevated
// authenticator credential no matter what token is presented.
var identityPaths = map[string]bool{
	"/api/auth/signup": true,
	"/api/auth/login":  true,
}

// ResolveRole picks the data-access role for a request. It is a pure
// function of (path, bearer token): identity paths pin the authenticator
// role; every other path takes the role from a valid token, and an absent
// or invalid token always degrades to guest, never to anything elevated.
func ResolveRole(secret []byte, path, bearer string) models.Role {
	if identityPaths[path] {
		return models.RoleAuthenticator
	}
	if bearer == "" {
		return models.RoleGuest
	}
	id, err := Verify(secret, bearer)
	if err != nil {
		return models.RoleGuest
	}
	return id.Role
}
