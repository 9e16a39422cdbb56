package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"folderstar/internal/ports"
)

// lineConfirmer asks prompts on out and reads one answer line per prompt
// from in. End of input declines.
func lineConfirmer(in io.Reader, out io.Writer, assumeYes bool) ports.Confirmer {
	if assumeYes {
		return ports.Answer(true)
	}

	reader := bufio.NewReader(in)
	return ports.ConfirmFunc(func(ctx context.Context, p ports.Prompt) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprintf(out, "%s [y = %s / N = %s]: ", p.Message, label(p.Accept, "Yes"), label(p.Reject, "No"))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false, nil
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes" || answer == strings.ToLower(p.Accept), nil
	})
}

func label(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
