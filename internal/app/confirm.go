package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks for permission to move files, reading a single line from
// In. Only the token "s" (trimmed, case-insensitive) confirms; every other
// answer, including an empty line or end of input, declines.
type Confirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c Confirmer) Confirm(count int, ext string) (bool, error) {
	fmt.Fprintf(c.Out, "Move these %d .%s files? [s/N]: ", count, ext)

	answer, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "s", nil
}
