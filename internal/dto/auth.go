package dto

type RegisterRequestDTO struct {
	FullName string `json:"fullName" example:"Ivana Petrova" validate:"required,max=100"`
	Email    string `json:"email"    example:"ivana@example.com" validate:"required,email,max=200"`
	Password string `json:"password" example:"hunter2hunter2" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"    example:"ivana@example.com" validate:"required,email"`
	Password string `json:"password" example:"hunter2hunter2" validate:"required"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}

type RoleResponseDTO struct {
	Role string `json:"role" example:"RegularUser"`
}

type ProfileResponseDTO struct {
	Message string `json:"message"`
}
