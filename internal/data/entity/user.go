package entity

type UserRole string

const (
	RoleCustomer  UserRole = "customer"
	RoleProvider  UserRole = "provider"
	RoleVolunteer UserRole = "volunteer"
	RoleAdmin     UserRole = "admin"
)

func ValidUserRole(role UserRole) bool {
	switch role {
	case RoleCustomer, RoleProvider, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base         `bson:",inline"`
	Name         string   `bson:"name"`
	Email        string   `bson:"email"`
	PasswordHash string   `bson:"password"`
	Phone        *string  `bson:"phone,omitempty"`
	Role         UserRole `bson:"role"`
	Address      string   `bson:"address,omitempty"`
	IsActive     bool     `bson:"is_active"`
}
