package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"
)

// progressBar draws conversion progress on a terminal.
// On anything other than a terminal it draws nothing.
type progressBar struct {
	w       io.Writer
	bar     progress.Model
	enabled bool
	drawn   int // last drawn value, in thousandths
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{
		w:       w,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		enabled: isTerminal(w),
		drawn:   -1,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Update redraws the bar when it has visibly moved.
func (p *progressBar) Update(done, total int) {
	if !p.enabled || total <= 0 {
		return
	}
	permille := done * 1000 / total
	if permille == p.drawn && done != total {
		return
	}
	p.drawn = permille
	fmt.Fprintf(p.w, "\r%s %d/%d", p.bar.ViewAs(float64(done)/float64(total)), done, total)
}

// Finish ends the bar's line.
func (p *progressBar) Finish() {
	if p.enabled && p.drawn >= 0 {
		fmt.Fprintln(p.w)
	}
	p.drawn = -1
}
