package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pyframe/shipit/internal/domain"
)

// promptChoice prints the numbered menu and reads one line of input,
// matched against the literal strings "1"-"4".
func promptChoice(in *bufio.Reader, out io.Writer) (domain.MenuChoice, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "What would you like to do?")
	for _, c := range domain.AllChoices() {
		fmt.Fprintf(out, "  %d. %s\n", c, c.Label())
	}
	fmt.Fprint(out, "\nEnter your choice (1-4): ")

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read choice: %w", err)
	}
	return domain.ParseMenuChoice(line)
}
