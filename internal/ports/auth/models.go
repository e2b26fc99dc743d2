package auth

// Claims es la identidad que el proveedor hospedado asocia al token.
type Claims struct {
	UserID      string
	Email       string
	DisplayName string
}
