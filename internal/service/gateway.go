package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashGatewaySecret produces the bcrypt hash stored in configuration for
// the login gateway's shared secret.
func HashGatewaySecret(secret string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// VerifyGatewaySecret compares a presented secret against the configured
// bcrypt hash. nil means the gateway is who it claims to be.
func VerifyGatewaySecret(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
