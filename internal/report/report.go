// Package report renders solved boards.
package report

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"

	"svw.info/megakolmio/internal/board"
	"svw.info/megakolmio/internal/domain"
)

// FormatSolution renders b as "[P6,P2,...]" with names in print order.
func FormatSolution(b board.State) string {
	return FormatNames(b.Solution().Names)
}

// FormatNames joins names inside square brackets.
func FormatNames(names []string) string {
	return "[" + strings.Join(names, ",") + "]"
}

// Writer writes one line per solution. Call Flush when done.
type Writer struct {
	out    *bufio.Writer
	format domain.Format
}

func NewWriter(w io.Writer, format domain.Format) *Writer {
	return &Writer{out: bufio.NewWriter(w), format: format}
}

// Write emits b in the writer's format. It satisfies solver.EmitFunc.
func (w *Writer) Write(b board.State) error {
	switch w.format {
	case domain.FormatJSON:
		line, err := json.Marshal(b.Solution())
		if err != nil {
			return errors.Wrap(err, "encode solution")
		}
		line = append(line, '\n')
		_, err = w.out.Write(line)
		return err
	default:
		_, err := w.out.WriteString(FormatSolution(b) + "\n")
		return err
	}
}

func (w *Writer) Flush() error { return w.out.Flush() }

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (domain.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return domain.FormatText, nil
	case "json":
		return domain.FormatJSON, nil
	}
	return domain.FormatText, errors.Errorf("unknown format %q", s)
}
