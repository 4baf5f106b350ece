package internal

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PromptLine asks the user for one line of input on stdin and returns it
// trimmed. It is a package variable so tests can replace it.
var PromptLine = func(label string) string {
	fmt.Printf("%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
	}
	return ""
}
