package model

// Credentials is the login/register payload. Password carries the encrypted form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the local registration form, validated before any network call.
type Registration struct {
	Username string `validate:"min=3"`
	Password string `validate:"min=6"`
	Confirm  string `validate:"eqfield=Password"`
}
