package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// RandomCodeGenerator draws a uniform 4-digit code in 1000-9999.
type RandomCodeGenerator struct{}

func (RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+1000, 10), nil
}
