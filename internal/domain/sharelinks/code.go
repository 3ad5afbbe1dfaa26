package sharelinks

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet excluye glifos visualmente ambiguos (0/O/1/l/I): los códigos
// se dictan por teléfono y se tipean a mano.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// CodeLength es el largo fijo del código compartible.
const CodeLength = 8

func generateCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share code: %w", err)
	}
	out := make([]byte, CodeLength)
	for i, b := range buf {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(out), nil
}
