// Package service holds domain services coordinating rules that span more
// than one aggregate or require injected capabilities.
package service

// PasswordHasher hashes raw passwords and verifies them against stored
// hashes. The domain only sees this capability, never the algorithm.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, stored string) bool
}
