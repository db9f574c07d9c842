package domain

// Role is the fixed set of collaborator roles. Not extensible at runtime.
type Role string

const (
	RoleManagement Role = "management"
	RoleSales      Role = "sales"
	RoleSupport    Role = "support"
)

// ValidRole reports whether s names one of the three known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleManagement, RoleSales, RoleSupport:
		return true
	}
	return false
}

// Collaborator models an employee of the business. The password hash is never
// serialised in API responses.
type Collaborator struct {
	ID           int64  `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Phone        string `json:"phone" bson:"phone"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         Role   `json:"role" bson:"role"`
}

// Actor identifies the authenticated collaborator issuing a request, as
// decoded from its token. Handlers never trust a client-supplied id or role.
type Actor struct {
	ID   int64
	Name string
	Role Role
}
