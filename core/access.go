package core

// AccessControl gates privileged operations to configured identities
type AccessControl interface {
	CanSetPrice(userID string) bool
}
