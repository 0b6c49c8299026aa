package auth

type LoginRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"-"`
	RefreshExp   int64  `json:"-"`
	EmployeeID   string `json:"employee_id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
