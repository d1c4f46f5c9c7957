package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	tokenLength = 21
)

// GenerateShareToken gera um token opaco de share link usando aleatoriedade
// criptográfica. Com 21 caracteres sobre um alfabeto de 64 símbolos o espaço
// de tokens é de 64^21 (~2^126), fora do alcance de enumeração.
func GenerateShareToken() (string, error) {
	return gonanoid.Generate(characters, tokenLength)
}
