// Package ui renders classification reports on the console and reads
// addresses interactively.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadAddress prompts for an address and returns it trimmed. io.EOF is
// returned once input is exhausted.
func ReadAddress(w io.Writer, reader *bufio.Reader) (string, error) {
	fmt.Fprintf(w, "    %s🔎 ADDRESS%s ", ColorPurple+ColorBold, ColorReset)
	fmt.Fprintf(w, "%s→%s ", ColorGreen, ColorReset)

	input, err := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if err != nil && input == "" {
		return "", err
	}
	return input, nil
}

// AskToContinue prompts user to continue or exit
func AskToContinue(w io.Writer, reader *bufio.Reader) bool {
	fmt.Fprintf(w, "\n    %s[Enter]%s Classify another  │  %s[Q]%s Exit\n", ColorGreen, ColorReset, ColorRed, ColorReset)
	fmt.Fprintf(w, "    %s→%s ", ColorCyan, ColorReset)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input != "q" && input != "quit" && input != "exit"
}
