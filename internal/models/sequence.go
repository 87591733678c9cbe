package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSequentialID формирует идентификатор вида INC-001. Ширина растет после 999.
func FormatSequentialID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// ParseSequence извлекает числовой суффикс идентификатора с заданным префиксом
func ParseSequence(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix+"-")
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
