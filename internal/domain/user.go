package domain

// User is the profile stored for an authenticated email.
type User struct {
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
}

// Merge returns u with every non-empty field of update applied.
// Email is never changed.
func (u User) Merge(update User) User {
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Avatar != "" {
		u.Avatar = update.Avatar
	}
	if update.Phone != "" {
		u.Phone = update.Phone
	}
	if update.City != "" {
		u.City = update.City
	}
	return u
}
