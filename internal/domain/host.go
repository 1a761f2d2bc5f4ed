package domain

// Host is a User that may own places. It shares the User field set and
// validation; ownership itself lives on Place.HostID and is resolved through
// the facade, never as object links.
type Host struct {
	User
}

func (Host) TableName() string { return "hosts" }

func NewHost(firstName, lastName, email, passwordHash string, isAdmin bool) (*Host, error) {
	u, err := NewUser(firstName, lastName, email, passwordHash, isAdmin)
	if err != nil {
		return nil, err
	}
	return &Host{User: *u}, nil
}
