package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// readPINNoEcho reads one line from a terminal with echo switched off.
func readPINNoEcho(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}

	restore, err := disableEcho(stdin)
	if err != nil {
		return "", err
	}
	defer restore()

	return readLine(stdin)
}

func readLine(reader io.Reader) (string, error) {
	line, err := bufio.NewReader(reader).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPIN asks for a PIN twice and returns it once both entries match.
func promptNewPIN(read func() (string, error), out io.Writer) (string, error) {
	fmt.Fprint(out, "New PIN: ")
	pin, err := read()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read pin: %w", err)
	}

	fmt.Fprint(out, "Repeat PIN: ")
	confirmation, err := read()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read pin confirmation: %w", err)
	}

	if pin != confirmation {
		return "", errors.New("pins do not match")
	}
	return pin, nil
}
