package files

import "fmt"

// sizeUnits are the decimal units a size is expressed in, smallest first.
//
//nolint:gochecknoglobals // Fixed unit ladder
var sizeUnits = []string{"kB", "MB", "GB", "TB"}

// FormatSize renders a byte count in kB, MB, GB or TB using powers of 1000,
// with two decimals. Sizes below 1 kB are still shown in kB.
func FormatSize(bytes int64) string {
	value := float64(bytes) / 1000
	unit := 0
	for value >= 1000 && unit < len(sizeUnits)-1 {
		value /= 1000
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}
