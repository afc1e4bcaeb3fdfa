package utils

import (
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/flatrunner/internal/errors"
)

// ReadStdin reads all content from stdin.
// Returns ErrNoInput if stdin is a terminal (no piped data) or empty.
func ReadStdin() ([]byte, error) {
	if IsTerminal() {
		return nil, fmt.Errorf("stdin is a terminal: %w", kerrors.ErrNoInput)
	}
	return readAll(os.Stdin)
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("stdin is empty: %w", kerrors.ErrNoInput)
	}
	return data, nil
}
