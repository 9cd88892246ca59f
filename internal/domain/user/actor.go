package user

// Actor is the authenticated caller of a request. It is built once by the
// auth middleware from the verified token and a fresh users row, and handed
// explicitly to every service call that needs identity or role.
type Actor struct {
	UserID   uint
	Email    string
	FullName string
	Role     string
}

func NewActor(u *User) *Actor {
	if u == nil {
		return nil
	}
	return &Actor{UserID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// CanAuthorCourses reports whether the actor may create courses.
func (a *Actor) CanAuthorCourses() bool {
	return a != nil && (a.Role == RoleTeacher || a.Role == RoleAdmin)
}

// CanManage reports whether the actor may edit a resource owned by ownerID.
func (a *Actor) CanManage(ownerID uint) bool {
	if a == nil {
		return false
	}
	return a.UserID == ownerID || a.Role == RoleAdmin
}
