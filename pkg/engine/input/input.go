package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// ReadLine reads a line of input from stdin
func ReadLine() (string, error) {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// ReadKey returns the code of the next key pressed. On a terminal the key is
// read in raw mode without waiting for Enter; otherwise a whole line is read
// and its first word is returned.
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := ReadLine()
		if err != nil {
			return "", err
		}
		return strings.ToLower(line), nil
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b, err := readByte()
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	if b == 0x1b {
		return readEscape(), nil
	}
	return keyCode(b), nil
}

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readEscape decodes what follows an ESC byte. A bare ESC cannot be told
// apart from the start of a sequence without a timeout, so only arrow keys
// and F5 are recognised and anything else reads as escape.
func readEscape() string {
	b2, err := readByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return "escape"
	}

	b3, err := readByte()
	if err != nil {
		return "escape"
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case '1':
		// F5 is ESC [ 1 5 ~
		b4, _ := readByte()
		b5, _ := readByte()
		if b4 == '5' && b5 == '~' {
			return "f5"
		}
	}
	return "escape"
}

// keyCode names a single raw byte the way bindings expect
func keyCode(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == '\r' || b == '\n':
		return "enter"
	case b >= 'A' && b <= 'Z':
		return string(b + ('a' - 'A'))
	case b >= 32 && b < 127:
		return string(b)
	}
	return ""
}
