package editor

import (
	"fmt"
	"strings"
)

const instructionSeparator = "--"

// Instructions is the header written above a new query in the external editor.
func Instructions(name string) string {
	return fmt.Sprintf(`-- Enter your SQL for %q below
-- Save and exit to continue, or leave it empty to cancel
%s
`, name, instructionSeparator)
}

// StripInstructions drops everything up to and including the first line that
// is only "--". Content without that line is returned trimmed.
func StripInstructions(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == instructionSeparator {
			return strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		}
	}
	return strings.TrimSpace(content)
}
