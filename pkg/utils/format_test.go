package utils

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(1234.56); got != "R$ 1.234,56" {
		t.Errorf("Expected R$ 1.234,56, got %s", got)
	}
	if got := FormatCurrency(0); got != "R$ 0,00" {
		t.Errorf("Expected R$ 0,00, got %s", got)
	}
	if got := FormatCurrency(1000000); got != "R$ 1.000.000,00" {
		t.Errorf("Expected R$ 1.000.000,00, got %s", got)
	}
	if got := FormatCurrency(-99.9); got != "-R$ 99,90" {
		t.Errorf("Expected -R$ 99,90, got %s", got)
	}
}

func TestFormatCPF(t *testing.T) {
	if got := FormatCPF("52998224725"); got != "529.982.247-25" {
		t.Errorf("Expected formatted CPF, got %s", got)
	}
	if got := FormatCPF("123"); got != "123" {
		t.Errorf("Expected short input unchanged, got %s", got)
	}
}

func TestFormatPhone(t *testing.T) {
	if got := FormatPhone("11987654321"); got != "(11) 98765-4321" {
		t.Errorf("Expected mobile format, got %s", got)
	}
	if got := FormatPhone("1187654321"); got != "(11) 8765-4321" {
		t.Errorf("Expected landline format, got %s", got)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 3, 5, 9, 8, 7, 0, time.UTC)

	if got := FormatDateShort(ts); got != "05/03/2026" {
		t.Errorf("Expected 05/03/2026, got %s", got)
	}
	if got := FormatDateTime(ts); got != "05/03/2026 09:08" {
		t.Errorf("Expected 05/03/2026 09:08, got %s", got)
	}
	if got := FormatTime(ts); got != "09:08" {
		t.Errorf("Expected 09:08, got %s", got)
	}
	if got := FormatDateShort(time.Time{}); got != "" {
		t.Errorf("Expected empty string for zero time, got %q", got)
	}
}

func TestDayPredicates(t *testing.T) {
	now := time.Date(2026, 3, 5, 22, 0, 0, 0, time.UTC)

	if !IsToday(time.Date(2026, 3, 5, 1, 0, 0, 0, time.UTC), now) {
		t.Errorf("Expected same calendar day to be today")
	}
	if !IsTomorrow(time.Date(2026, 3, 6, 1, 0, 0, 0, time.UTC), now) {
		t.Errorf("Expected next calendar day to be tomorrow")
	}
	if !IsYesterday(time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC), now) {
		t.Errorf("Expected previous calendar day to be yesterday")
	}
	if IsToday(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), now) {
		t.Errorf("Expected different day to not be today")
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("trainer@guialmeidapersonal.esp.br") {
		t.Errorf("Expected valid email to pass")
	}
	if IsValidEmail("not-an-email") {
		t.Errorf("Expected invalid email to fail")
	}
	if IsValidEmail("user@localhost") {
		t.Errorf("Expected dotless domain to fail")
	}
}

func TestIsValidCPF(t *testing.T) {
	if !IsValidCPF("529.982.247-25") {
		t.Errorf("Expected valid CPF to pass")
	}
	if IsValidCPF("529.982.247-26") {
		t.Errorf("Expected bad check digit to fail")
	}
	if IsValidCPF("111.111.111-11") {
		t.Errorf("Expected repeated digits to fail")
	}
	if IsValidCPF("123") {
		t.Errorf("Expected short input to fail")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	token, err := NewRefreshToken()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Fatalf("Expected non-empty token")
	}

	other, err := NewRefreshToken()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == other {
		t.Errorf("Expected distinct tokens")
	}

	if HashToken(token) != HashToken(token) {
		t.Errorf("Expected stable hash")
	}
	if HashToken(token) == HashToken(other) {
		t.Errorf("Expected distinct hashes")
	}
}
