package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmpleado Role = "EMPLEADO"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmpleado
}

// User is a staff account for the admin panel.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Nombre       string    `json:"nombre"`
	Role         Role      `json:"role"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateUserInput struct {
	Email    string
	Password string
	Nombre   string
	Role     Role
}

type UpdateUserInput struct {
	Nombre   *string
	Role     *Role
	Password *string
	Activo   *bool
}

type UserFilter struct {
	Role   Role
	Activo *bool
}
