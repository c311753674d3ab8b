package auth

import "testing"

func TestLogin(t *testing.T) {
	a := NewAuthenticator()
	a.Register("admin", "admin")

	if !a.Login("admin", "admin") {
		t.Error("expected matching credentials to pass")
	}
	if a.Login("admin", "wrong") {
		t.Error("expected wrong password to fail")
	}
	if a.Login("nobody", "admin") {
		t.Error("expected unknown user to fail")
	}
}

func TestRegister_Replaces(t *testing.T) {
	a := NewAuthenticator()
	a.Register("admin", "old")
	a.Register("admin", "new")

	if a.Login("admin", "old") {
		t.Error("replaced credential must not work")
	}
	if !a.Login("admin", "new") {
		t.Error("expected replacing credential to work")
	}
}
