package geom

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var colorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ParseInteger parses a base-10 coordinate token. Values must fit in 32 bits
// so that origin plus extent never overflows int.
func ParseInteger(token string) (int, error) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// IsValidInteger reports whether token is a base-10 integer in the 32-bit
// range. The caller is expected to have trimmed surrounding whitespace.
func IsValidInteger(token string) bool {
	_, err := ParseInteger(token)
	return err == nil
}

// IsValidColor reports whether token is exactly six hex digits, any case, with
// no leading '#'.
func IsValidColor(token string) bool {
	return colorPattern.MatchString(token)
}

var ErrInvalidColor = errors.New("geom: invalid color")

// ParseColor converts a color token into a colorful.Color.
func ParseColor(token string) (colorful.Color, error) {
	if !IsValidColor(token) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	c, err := colorful.Hex("#" + token)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return c, nil
}
