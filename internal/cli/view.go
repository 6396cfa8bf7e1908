package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"customerlist/internal/listview"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	keyCtrlC    = 0x03
	helpLine    = "s: sırala  q: çıkış"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Interactive customer table",
	Long: `Show the customer table and keep it on screen.

Press s to cycle the registration date sort (descending, ascending, shop order)
and q to quit. Returning to shop order fetches the list again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		raw := false
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			old, err := term.MakeRaw(int(f.Fd()))
			if err != nil {
				return fmt.Errorf("failed to enter raw mode: %w", err)
			}
			defer term.Restore(int(f.Fd()), old)
			raw = true
		}

		return runView(cmd.Context(), listview.NewView(client), in, cmd.OutOrStdout(), loc, raw)
	},
}

// runView draws the view, then applies one key per byte read from in until
// q, Ctrl-C or end of input.
func runView(ctx context.Context, v *listview.View, in io.Reader, out io.Writer, loc *time.Location, raw bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := draw(out, v.State(), loc, raw); err != nil {
		return err
	}
	if err := draw(out, v.Load(ctx), loc, raw); err != nil {
		return err
	}

	r := bufio.NewReader(in)
	for {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch b {
		case 'q', 'Q', keyCtrlC:
			return nil
		case 's', 'S':
			if err := draw(out, v.Toggle(ctx), loc, raw); err != nil {
				return err
			}
		}
	}
}

func draw(out io.Writer, s listview.State, loc *time.Location, raw bool) error {
	var buf bytes.Buffer
	if raw {
		buf.WriteString(clearScreen)
	}
	if err := listview.RenderText(&buf, s, loc); err != nil {
		return err
	}
	buf.WriteString("\n" + helpLine + "\n")

	b := buf.Bytes()
	if raw {
		b = bytes.ReplaceAll(b, []byte("\n"), []byte("\r\n"))
	}
	_, err := out.Write(b)
	return err
}
