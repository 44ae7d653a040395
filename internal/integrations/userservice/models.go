package userservice

// User профиль пользователя из UserService
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // customer, barber или admin
}

// Роли пользователей
const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
	RoleAdmin    = "admin"
)

// IsCustomer возвращает true, если пользователь — клиент
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
