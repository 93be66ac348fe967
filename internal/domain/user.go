package domain

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int     `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password"`
	Name         *string `json:"name" db:"name"`
	Role         string  `json:"role" db:"role"`
}

// InsertUser é o formato validado para criação de usuários.
// Password chega em texto puro e é convertido em hash antes de ir para o storage.
type InsertUser struct {
	Username string  `json:"username" db:"username"`
	Password string  `json:"password" db:"password"`
	Name     *string `json:"name" db:"name"`
	Role     string  `json:"role" db:"role"`
}

func (u *InsertUser) Validate() error {
	var errs ValidationErrors

	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		errs.Add("username", "obrigatório")
	}
	if u.Password == "" {
		errs.Add("password", "obrigatório")
	}
	if u.Role == "" {
		u.Role = RoleUser
	}

	return errs.OrNil()
}

// UserProfile é a visão pública do usuário retornada por login e /me
type UserProfile struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name"`
	Role     string  `json:"role"`
}

func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}

type Claims struct {
	UserID   int    `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
