package theme

import (
	"regexp"
	"strconv"
)

var hexColorPattern = regexp.MustCompile(`^#?([a-fA-F0-9]{2})([a-fA-F0-9]{2})([a-fA-F0-9]{2})$`)

// IsLightColor applies the perceptual brightness formula
// (r*299 + g*587 + b*114)/1000 and thresholds it at the midpoint of the
// 0-255 range. A color that does not parse counts as dark.
func IsLightColor(hex string) bool {
	m := hexColorPattern.FindStringSubmatch(hex)
	if m == nil {
		return false
	}

	r, _ := strconv.ParseInt(m[1], 16, 32)
	g, _ := strconv.ParseInt(m[2], 16, 32)
	b, _ := strconv.ParseInt(m[3], 16, 32)

	brightness := (r*299 + g*587 + b*114) / 1000
	return brightness > 128
}
