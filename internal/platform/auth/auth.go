// Package auth gates the console behind a single operator login.
// Credentials are plaintext and in-memory: this is a demo session
// lock, not a security boundary.
package auth

// Authenticator checks operator credentials.
type Authenticator struct {
	creds map[string]string
}

func NewAuthenticator() *Authenticator {
	return &Authenticator{creds: make(map[string]string)}
}

// Register adds or replaces an operator credential pair.
func (a *Authenticator) Register(user, pass string) {
	a.creds[user] = pass
}

// Login reports whether the given credentials match a registered
// operator. Comparison is an exact string match.
func (a *Authenticator) Login(user, pass string) bool {
	stored, ok := a.creds[user]
	return ok && stored == pass
}
