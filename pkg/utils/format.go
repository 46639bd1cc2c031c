package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders a BRL amount in pt-BR style: R$ 1.234,56.
func FormatCurrency(value float64) string {
	negative := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// FormatCPF formats an 11-digit CPF as 000.000.000-00. Anything else is
// returned unchanged.
func FormatCPF(cpf string) string {
	cleaned := digitsOnly(cpf)
	if len(cleaned) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cleaned[0:3], cleaned[3:6], cleaned[6:9], cleaned[9:11])
}

// FormatPhone formats Brazilian phone numbers: (11) 98765-4321 or (11) 8765-4321.
func FormatPhone(phone string) string {
	cleaned := digitsOnly(phone)
	switch len(cleaned) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", cleaned[0:2], cleaned[2:7], cleaned[7:11])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", cleaned[0:2], cleaned[2:6], cleaned[6:10])
	default:
		return phone
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
