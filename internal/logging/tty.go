package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ForceColorEnv turns color on for log output even when stderr is redirected.
const ForceColorEnv = "ALIASMAN_FORCE_COLOR"

type fdWriter interface {
	Fd() uintptr
}

// IsTTY reports whether w is backed by a terminal file descriptor.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether log lines written to w should carry ANSI
// escapes. NO_COLOR and TERM=dumb win over ALIASMAN_FORCE_COLOR.
func SupportsColor(w io.Writer) bool {
	return colorAllowed(os.LookupEnv, IsTTY(w))
}

func colorAllowed(lookup func(string) (string, bool), tty bool) bool {
	if _, set := lookup("NO_COLOR"); set {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	if v, set := lookup(ForceColorEnv); set && v != "" && v != "0" {
		return true
	}
	return tty
}
