package dto

type ChangePasswordInput struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Password string `json:"password"`
	CSRF     string `json:"csrf_token"`
	IP       string `json:"-"`
}
