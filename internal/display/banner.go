package display

import (
	"fmt"
	"os"

	"github.com/aziksh-ospanov/kip-dataset-scripts/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `     _          _
  __| | ___  __| |_   _ _ __
 / _`+"`"+` |/ _ \/ _`+"`"+` | | | | '_ \
| (_| |  __/ (_| | |_| | |_) |
 \__,_|\___|\__,_|\__,_| .__/
                       |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
