package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func ConverToint(str string) (int, error) {
	portInt, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return 0, fmt.Errorf("error al convertir %q a entero: %w", str, err)
	}
	return portInt, nil
}

// ConverToFloat accepts both "9.99" and "9,99".
func ConverToFloat(str string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(str), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("error al convertir %q a número: %w", str, err)
	}
	return f, nil
}

// IntOrZero coerces an optional numeric field; blank means zero.
func IntOrZero(str string) (int, error) {
	if strings.TrimSpace(str) == "" {
		return 0, nil
	}
	return ConverToint(str)
}

// FloatOrZero coerces an optional decimal field; blank means zero.
func FloatOrZero(str string) (float64, error) {
	if strings.TrimSpace(str) == "" {
		return 0, nil
	}
	return ConverToFloat(str)
}
