package domain

type Client struct {
	ID           int64
	Username     string
	PasswordHash string
}
