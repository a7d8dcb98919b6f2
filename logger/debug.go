package logger

import (
	"os"
	"strings"
)

// debuggerAttached reports whether the process is currently being traced by
// a debugger. On Linux this reads the TracerPid field of /proc/self/status;
// on platforms without procfs it reports false. Replace the probe with
// Logger.SetDebugCheck to force either branch.
func debuggerAttached() bool {
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if rest, ok := strings.CutPrefix(line, "TracerPid:"); ok {
			return strings.TrimSpace(rest) != "0"
		}
	}
	return false
}
