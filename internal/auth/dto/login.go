package dto

type LoginInput struct {
	Email    string `json:"login"`
	Password string `json:"password"`
	CSRF     string `json:"csrf_token"`
	IP       string `json:"-"`
}
