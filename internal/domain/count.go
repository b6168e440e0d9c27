package domain

import "fmt"

// ItemsLeft renders the active-count footer, e.g. "1 item left" or "3 items left".
// Negative counts are shown as zero.
func ItemsLeft(n int) string {
	if n < 0 {
		n = 0
	}
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
