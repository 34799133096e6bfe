package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type Account struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Verified  bool     `json:"verified"`
	Role      UserRole `json:"role"`
}

func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Identity — то, что хранится в сессии (без пароля)
type Identity struct {
	ID        int64    `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
}

func (a Account) Identity() Identity {
	return Identity{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Role:      a.Role,
	}
}

func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}
