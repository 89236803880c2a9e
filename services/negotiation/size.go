package negotiation

import (
	"fmt"

	"github.com/tubedash/web-ui/models"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count with one decimal using 1024 thresholds,
// e.g. "1.5 MB". Zero means unknown.
func FormatSize(n float64) string {
	if n <= 0 {
		return models.UnknownSizeLabel
	}
	for _, u := range sizeUnits {
		if n < 1024 {
			return fmt.Sprintf("%.1f %s", n, u)
		}
		n /= 1024
	}
	return fmt.Sprintf("%.1f TB", n)
}
