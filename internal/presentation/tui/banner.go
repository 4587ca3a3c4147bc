package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the orderbot banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`   ___          _           _           _   `, "#fbbf24"},
		{`  / _ \ _ __ __| | ___ _ __| |__   ___ | |_ `, "#f59e0b"},
		{` | | | | '__/ _' |/ _ \ '__| '_ \ / _ \| __|`, "#f97316"},
		{` | |_| | | | (_| |  __/ |  | |_) | (_) | |_ `, "#ef4444"},
		{`  \___/|_|  \__,_|\___|_|  |_.__/ \___/ \__|`, "#dc2626"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
