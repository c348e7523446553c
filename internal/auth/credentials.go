package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials guarda os dois segredos compartilhados da aplicação.
type Credentials struct {
	adminHash    []byte
	userPassword string
}

// NewCredentials gera o hash do segredo de admin. Sem segredo, o login de admin fica desligado.
func NewCredentials(adminSecret, userPassword string) (*Credentials, error) {
	c := &Credentials{userPassword: userPassword}
	if adminSecret == "" {
		return c, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c.adminHash = hash
	return c, nil
}

func (c *Credentials) AdminEnabled() bool {
	return len(c.adminHash) > 0
}

func (c *Credentials) CheckAdmin(secret string) bool {
	if !c.AdminEnabled() || secret == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.adminHash, []byte(secret)) == nil
}

// CheckUser compara a senha de equipe. Sem senha configurada, qualquer valor não vazio passa.
func (c *Credentials) CheckUser(password string) bool {
	if password == "" {
		return false
	}
	if c.userPassword == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.userPassword)) == 1
}
