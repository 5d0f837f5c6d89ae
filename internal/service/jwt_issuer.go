package service

import (
	"plantbook/internal/utils"
)

type JWTTokenIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTTokenIssuer) IssueToken(userID string, email string, role string) (string, error) {
	if j.Manager == nil {
		return "", utils.ErrInvalidToken
	}
	return j.Manager.IssueToken(userID, email, role)
}
