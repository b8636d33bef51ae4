package domain

// User represents one login-capable identity. Users are provisioned
// out-of-band (there is no signup flow); the service only ever reads them.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
