package sharing

import (
	"fmt"
	"strings"
)

// PlatformError reports an unsupported platform name at an input boundary.
type PlatformError struct {
	Name string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %q (supported: %s)", e.Name, PlatformList())
}

// PlatformList returns the supported platform names joined with ", ".
func PlatformList() string {
	names := make([]string, 0, len(platforms))
	for _, p := range Platforms() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}
