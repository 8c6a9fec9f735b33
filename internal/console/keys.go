package console

import (
	"bufio"
	"errors"
)

// ErrInterrupted is returned when the operator presses Ctrl-C while a menu
// holds the terminal in raw mode, where the keypress arrives as a byte rather
// than a signal.
var ErrInterrupted = errors.New("console: interrupted")

type key int

const (
	keyOther key = iota
	keyUp
	keyDown
	keyEnter
	keyInterrupt
)

const (
	esc   = 0x1b
	ctrlC = 0x03
)

// readKey decodes one key press. Arrow keys arrive as ESC [ A/B, or ESC O A/B
// in application cursor mode. Enter is CR in raw mode and LF otherwise.
func readKey(r *bufio.Reader) (key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return keyOther, err
	}

	switch b {
	case '\r', '\n':
		return keyEnter, nil
	case ctrlC:
		return keyInterrupt, nil
	case esc:
	default:
		return keyOther, nil
	}

	next, err := r.ReadByte()
	if err != nil {
		return keyOther, err
	}
	if next != '[' && next != 'O' {
		return keyOther, nil
	}

	code, err := r.ReadByte()
	if err != nil {
		return keyOther, err
	}
	switch code {
	case 'A':
		return keyUp, nil
	case 'B':
		return keyDown, nil
	default:
		return keyOther, nil
	}
}
