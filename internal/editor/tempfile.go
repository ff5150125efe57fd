package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command returns the user's editor, vim when $EDITOR is unset.
func Command() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vim"
}

// Open runs the external editor on path attached to the terminal.
func Open(path string) error {
	parts := strings.Fields(Command())
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", parts[0], err)
	}
	return nil
}

func CreateTempFile(prefix, content string) (*os.File, error) {
	tmpFile, err := os.CreateTemp("", prefix+"*.sql")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	return tmpFile, nil
}

// EditTempFileWithTemplate lets the user write SQL below the instructions in
// the external editor and returns what they wrote.
func EditTempFileWithTemplate(instructions, prefix string) (string, error) {
	tmpFile, err := CreateTempFile(prefix, instructions)
	if err != nil {
		return "", err
	}
	path := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(path)

	if err := Open(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return StripInstructions(string(data)), nil
}
