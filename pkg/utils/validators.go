package utils

import (
	"net/mail"
	"strings"
)

func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return false
	}
	// mail.ParseAddress accepts local addresses without a dotted domain.
	at := strings.LastIndex(addr.Address, "@")
	return at > 0 && strings.Contains(addr.Address[at:], ".")
}

func IsValidPassword(password string) bool {
	return len(password) >= 8
}

// IsValidCPF verifies the two CPF check digits. Repeated-digit sequences
// (e.g. 111.111.111-11) are rejected even though their digits check out.
func IsValidCPF(cpf string) bool {
	cleaned := digitsOnly(cpf)
	if len(cleaned) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if cleaned[i] != cleaned[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpfDigit(cleaned, 9) == int(cleaned[9]-'0') &&
		cpfDigit(cleaned, 10) == int(cleaned[10]-'0')
}

func cpfDigit(cleaned string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(cleaned[i]-'0') * (length + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
