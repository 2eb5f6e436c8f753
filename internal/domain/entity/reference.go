package entity

// Role is a resolved role reference. Mention is the platform token that pings it.
type Role struct {
	ID      string
	Name    string
	Mention string
}

// Channel is a resolved channel reference.
type Channel struct {
	ID   string
	Name string
}

// Actor is the user issuing a command together with the roles they hold.
type Actor struct {
	UserID  string
	RoleIDs []string
}

// HasAnyRole reports whether the actor holds one of roleIDs.
func (a Actor) HasAnyRole(roleIDs []string) bool {
	for _, want := range roleIDs {
		for _, have := range a.RoleIDs {
			if want == have {
				return true
			}
		}
	}
	return false
}
