package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
	"github.com/ayoisaiah/tempus/internal/ui"
)

func sessionRows(sessions []models.Session, loc *time.Location) [][]string {
	d := [][]string{
		{"#", "COMPLETED AT", "DURATION", "TAG", "MODE"},
	}

	for i := range sessions {
		sess := &sessions[i]

		mode := ui.Green(sess.Mode)
		if sess.Mode == models.ModePomodoro {
			mode = ui.Magenta(sess.Mode)
		}

		d = append(d, []string{
			fmt.Sprintf("%d", i+1),
			sess.CompletedAt.In(loc).Format("January 02, 2006 03:04 PM"),
			timeutil.FormatClock(sess.Duration),
			string(sess.Tag),
			mode,
		})
	}

	return d
}

// List prints the sessions completed on one day as a table.
func List(w io.Writer, sessions []models.Session, loc *time.Location) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint(noSessionsMsg))
		return
	}

	ui.PrintTable(sessionRows(sessions, loc), w)
}
