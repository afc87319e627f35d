// Package auth issues and verifies HS256 bearer tokens and hashes account passwords with bcrypt.
//
// Tokens carry the same claims as the managed auth provider (sub, email, role, aud),
// so tokens minted by either side are accepted as long as they share the secret.
package auth
