package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/ayoisaiah/tempus/internal/countdown"
	"github.com/ayoisaiah/tempus/internal/focus"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
	"github.com/ayoisaiah/tempus/internal/ui"
	"github.com/ayoisaiah/tempus/store"
)

// Status is the state of a running timer as seen by other processes.
type Status struct {
	EndTime           time.Time        `json:"end_time"`
	Status            countdown.Status `json:"status"`
	Mode              models.Mode      `json:"mode"`
	Phase             models.Phase     `json:"phase"`
	Tag               models.Tag       `json:"tag"`
	Remaining         int              `json:"remaining"`
	WorkCycle         int              `json:"work_cycle"`
	LongBreakInterval int              `json:"long_break_interval"`
}

// NewStatus captures snap at now.
func NewStatus(snap focus.Snapshot, now time.Time) Status {
	s := Status{
		Status:            snap.Status,
		Mode:              snap.Mode,
		Phase:             snap.Phase,
		Tag:               snap.Tag,
		Remaining:         snap.Remaining,
		WorkCycle:         snap.CycleCount + 1,
		LongBreakInterval: snap.SessionsBeforeLongBreak,
	}

	if snap.Status == countdown.Running {
		s.EndTime = now.Add(time.Duration(snap.Remaining) * time.Second)
	}

	return s
}

// RemainingAt returns the seconds left at now. A running timer counts down
// towards its end time while an idle or paused one stays put.
func (s *Status) RemainingAt(now time.Time) int {
	if s.Status != countdown.Running {
		return s.Remaining
	}

	return int(s.EndTime.Sub(now).Round(time.Second) / time.Second)
}

// Label describes the current run, e.g. "[Work 2/4]".
func (s *Status) Label() string {
	if s.Mode != models.ModePomodoro {
		return "[Focus]"
	}

	switch s.Phase {
	case models.PhaseShortBreak:
		return "[Short break]"
	case models.PhaseLongBreak:
		return "[Long break]"
	}

	return fmt.Sprintf("[Work %d/%d]", s.WorkCycle, s.LongBreakInterval)
}

// Text renders the status line printed by the status command.
func (s *Status) Text(now time.Time) string {
	text := fmt.Sprintf(
		"%s: %s",
		ui.PhaseColor(s.Phase, s.Label()),
		timeutil.FormatClock(s.RemainingAt(now)),
	)

	if s.Tag != "" {
		text += " >>> " + string(s.Tag)
	}

	if s.Status == countdown.Paused {
		text += " (paused)"
	}

	return text
}

// WriteStatusFile replaces the status file at path with s.
func WriteStatusFile(path string, s *Status) (err error) {
	statusFile, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// ReadStatusFile decodes the status file at path.
func ReadStatusFile(path string) (Status, error) {
	var s Status

	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	err = json.Unmarshal(b, &s)
	if err != nil {
		return s, errReadStatus.Fmt(path).Wrap(err)
	}

	return s, nil
}

// ReportStatus writes the status of the running timer to w. Nothing is
// written when no timer holds the database.
func ReportStatus(w io.Writer, dbPath, statusPath string, now time.Time) error {
	locked, err := store.IsLocked(dbPath)
	if err != nil {
		return err
	}

	if !locked {
		return nil
	}

	s, err := ReadStatusFile(statusPath)
	if err != nil {
		// missing file should not return an error
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	if s.Status == countdown.Idle || s.RemainingAt(now) < 0 {
		return nil
	}

	_, err = fmt.Fprintln(w, s.Text(now))

	return err
}
