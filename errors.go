package dlx

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// contractViolation reports a broken caller contract (non-monotonic column
// list, use after Free, ...) and aborts the process. These are programming
// errors, not recoverable conditions: the mesh cannot be left half built or
// half torn down, so there is nothing sensible to return to the caller.
func contractViolation(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", color.HiRedString("dlx: contract violation:"), msg)
	os.Exit(1)
}
