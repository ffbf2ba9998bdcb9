package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime12 renders a 24-hour "HH:MM" string as "H:MM AM/PM" for
// display and prompts. Returns the empty string for empty input and the
// input unchanged when it is not an HH:MM string.
func FormatTime12(t string) string {
	if t == "" {
		return ""
	}
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return t
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return t
	}
	if mm == "" {
		mm = "00"
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, mm, ampm)
}
