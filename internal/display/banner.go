package display

import (
	"fmt"
	"os"

	"github.com/backmassage/drscat/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `     _
  __| |_ __ ___  ___ __ _| |_
 / _`+"`"+` | '__/ __|/ __/ _`+"`"+` | __|
| (_| | |  \__ \ (_| (_| | |_
 \__,_|_|  |___/\___\__,_|\__|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
