package domain

// Identity answers "who is the current caller" for a single request.
// The identity key is the username, not the numeric id.
type Identity interface {
	IsAuthenticated() bool
	UserID() string
}

type anonymous struct{}

func (anonymous) IsAuthenticated() bool { return false }
func (anonymous) UserID() string        { return "" }

// Anonymous is the identity of every caller without a valid session.
var Anonymous Identity = anonymous{}

type userIdentity struct {
	user *User
}

// IdentityFor wraps a stored user as an authenticated identity.
func IdentityFor(user *User) Identity {
	if user == nil {
		return Anonymous
	}
	return userIdentity{user: user}
}

func (userIdentity) IsAuthenticated() bool { return true }

func (i userIdentity) UserID() string { return i.user.Username }

// UserOf returns the backing user of an authenticated identity, or nil for
// Anonymous.
func UserOf(id Identity) *User {
	if u, ok := id.(userIdentity); ok {
		return u.user
	}
	return nil
}
