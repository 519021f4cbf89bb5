package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 7
)

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GeneratePrefixedID gera um identificador de fallback no formato <prefix>-<id> (ex: acc-k3j9x2a)
func GeneratePrefixedID(prefix string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s", prefix, id), nil
}
