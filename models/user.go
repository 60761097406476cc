package models

// User is an account record from the fixture or created via signup.
// The password is serialized on purpose: the mock echoes the full user back
// on login/signup so the client app can be developed against it. Never reuse
// this shape with a real backend.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
