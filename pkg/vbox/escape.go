package vbox

import (
	"runtime"
	"strings"
)

// hostWindows selects the escaping convention. Fixed at process start; the
// command line is always interpreted by the host shell, never a remote one.
var hostWindows = runtime.GOOS == "windows"

// windowsNeedsQuoting are the characters (besides whitespace) that force an
// argument to be quoted for cmd.exe.
const windowsNeedsQuoting = "\\\"&"

// posixEscapeSet are the characters that get backslash-escaped for a POSIX
// shell. The set is intentionally preserved as-is for compatibility with
// existing callers: single quotes and several other shell metacharacters
// (e.g. '*', '(', '>') pass through unescaped. Arguments containing those are
// the caller's responsibility. Changing the set changes emitted byte
// sequences, so it is documented here rather than hardened.
const posixEscapeSet = " \t\\|;&\"`$"

// Escape quotes a single argument for safe inclusion, space-delimited, in a
// shell-interpreted command line on the host platform.
func Escape(arg string) string {
	if hostWindows {
		return escapeWindows(arg)
	}
	return escapePosix(arg)
}

// escapeWindows applies the cmd.exe convention: arguments without whitespace
// or any of `\ " &` pass through unchanged; everything else is wrapped in
// double quotes with embedded quotes tripled.
func escapeWindows(arg string) string {
	if !strings.ContainsAny(arg, " \t\n\r\v\f") && !strings.ContainsAny(arg, windowsNeedsQuoting) {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `"""`) + `"`
}

// escapePosix backslash-escapes every occurrence of a character in
// posixEscapeSet, leaving all other characters untouched.
func escapePosix(arg string) string {
	var b strings.Builder
	b.Grow(len(arg))
	for i := 0; i < len(arg); i++ {
		if strings.IndexByte(posixEscapeSet, arg[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(arg[i])
	}
	return b.String()
}
