package notify

import (
	"fmt"
	"io"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/muesli/termenv"
)

var _ gfx.Notifier = (*Terminal)(nil)

// Terminal prints notifications as bold red lines, or plain text when the
// output is not a color terminal.
type Terminal struct {
	out      *termenv.Output
	messages Messages
}

func NewTerminal(w io.Writer, messages Messages, opts ...termenv.OutputOption) *Terminal {
	return &Terminal{
		out:      termenv.NewOutput(w, opts...),
		messages: messages,
	}
}

func (t *Terminal) Notify(err error) {
	if err == nil {
		return
	}
	msg := t.out.String(t.messages.Format(err)).Foreground(termenv.ANSIRed).Bold()
	fmt.Fprintln(t.out, msg.String())
}
