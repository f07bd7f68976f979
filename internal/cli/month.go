package cli

import (
	"errors"
	"strconv"
	"strings"

	"cloudeng.io/datetime"
)

// parseMonthFlag reads a human month ("3", "03", "mar", "March") and returns it zero-based.
// Out-of-range numbers are passed through for the picker to clamp.
func parseMonthFlag(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errors.New("empty month")
	}
	var m datetime.Month
	if err := m.Parse(v); err != nil {
		n, nerr := strconv.Atoi(v)
		if nerr != nil {
			return 0, err
		}
		return n - 1, nil
	}
	return int(m) - 1, nil
}
