// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/allisson/ciphershield/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// readPassword and isTerminal are swapped out in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// promptSecret prints prompt and reads one line without echo when the reader is a terminal.
// Piped input is read as a plain line so that scripts can feed passwords on stdin.
func promptSecret(rw IOTuple, reader *bufio.Reader, prompt string) (string, error) {
	if _, err := fmt.Fprint(rw.Writer, prompt); err != nil {
		return "", err
	}

	if f, ok := rw.Reader.(*os.File); ok && isTerminal(int(f.Fd())) {
		secret, err := readPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(rw.Writer)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(secret), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword asks for a password twice and fails when the entries differ.
func promptNewPassword(rw IOTuple, reader *bufio.Reader, prompt string) (string, error) {
	password, err := promptSecret(rw, reader, prompt)
	if err != nil {
		return "", err
	}
	confirm, err := promptSecret(rw, reader, "Confirm password: ")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}
