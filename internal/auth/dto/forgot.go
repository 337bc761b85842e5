package dto

type ForgotPasswordInput struct {
	Email string `json:"email"`
	CSRF  string `json:"csrf_token"`
	IP    string `json:"-"`
}
