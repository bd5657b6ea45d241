// Package notify provides the fire-and-forget success signal shown when a
// task completes, via the OS-native notifier.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// TaskCompleted fires a completion notification in the background.
// It never blocks and never reports failure: a missing notification command
// on the host simply means silence.
func TaskCompleted(title string, xp int) {
	go func() {
		message := fmt.Sprintf("%s (+%d XP)", title, xp)

		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			script := fmt.Sprintf(`display notification "%s" with title "Focus Arena"`, escapeAppleScript(message))
			cmd = exec.Command("osascript", "-e", script)
		case "linux":
			cmd = exec.Command("notify-send", "Focus Arena", message)
		default:
			return
		}

		_ = cmd.Run()
	}()
}

func escapeAppleScript(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return r.Replace(s)
}
