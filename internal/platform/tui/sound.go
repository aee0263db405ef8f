package tui

import (
	"fmt"
	"os"
)

// ringBell plays the terminal bell for line-clear feedback. It writes
// to stderr so the alternate-screen renderer on stdout is undisturbed.
func ringBell() {
	fmt.Fprint(os.Stderr, "\a")
}
