package debug

import (
	"fmt"
	"os"
	"strings"
)

// Logf writes a formatted message to stderr.  Slice arguments of strings
// are rendered as slash joined paths.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].([]string); ok {
			args[i] = "/" + strings.Join(x, "/")
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
