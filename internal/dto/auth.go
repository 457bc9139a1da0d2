package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ProfileResponseDTO struct {
	Login    string  `json:"login"`
	Nome     string  `json:"nome"`
	Telefone *string `json:"telefone"`
	ChavePix *string `json:"chave_pix"`
}

// UpdateProfileRequestDTO distinguishes absent fields from blank ones, so a
// client can clear telefone or chave_pix by sending an empty string.
type UpdateProfileRequestDTO struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	ChavePix *string `json:"chave_pix"`
}
