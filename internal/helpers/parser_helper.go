package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// QueryInt reads an integer query parameter, falling back to def when the
// parameter is absent, malformed, or negative.
func QueryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return def
	}
	return value
}

// QueryBool reads a boolean query parameter, treating anything other than
// an explicit true value as false.
func QueryBool(c *gin.Context, name string) bool {
	value, err := strconv.ParseBool(c.Query(name))
	return err == nil && value
}

// FormatCount renders a follower count with thousands separators for
// user-facing messages, e.g. 100000 -> "100,000".
func FormatCount(n int) string {
	digits := strconv.Itoa(n)
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	result := strings.Join(groups, ",")
	if negative {
		result = "-" + result
	}
	return result
}
