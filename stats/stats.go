// Package stats reports Tempus session statistics
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tempus/internal/analytics"
	"github.com/ayoisaiah/tempus/internal/models"
	"github.com/ayoisaiah/tempus/internal/timeutil"
	"github.com/ayoisaiah/tempus/internal/ui"
)

const (
	barChartChar  = "▇"
	heatmapChar   = "■"
	noSessionsMsg = "No sessions found for the specified date"
)

// TagTotal is the time logged under one tag.
type TagTotal struct {
	Tag     models.Tag `json:"tag"`
	Minutes int        `json:"minutes"`
}

// Report is the complete set of statistics shown by the stats command.
type Report struct {
	GeneratedAt   time.Time               `json:"generatedAt"`
	Weekly        []analytics.DayBucket   `json:"weekly"`
	Tags          []TagTotal              `json:"tags"`
	Heatmap       []analytics.HeatmapCell `json:"heatmap"`
	TotalMinutes  int                     `json:"totalMinutes"`
	TotalSessions int                     `json:"totalSessions"`
	TodayMinutes  int                     `json:"todayMinutes"`
	CurrentStreak int                     `json:"currentStreak"`
	LongestStreak int                     `json:"longestStreak"`
	HeatmapWeeks  int                     `json:"heatmapWeeks"`
}

// sortedTags orders the tag totals by minutes, most first. Ties keep the
// display order of the tags.
func sortedTags(totals map[models.Tag]int) []TagTotal {
	out := make([]TagTotal, 0, len(totals))

	for _, tag := range models.Tags {
		if m, ok := totals[tag]; ok {
			out = append(out, TagTotal{Tag: tag, Minutes: m})
		}
	}

	slices.SortStableFunc(out, func(a, b TagTotal) int {
		return b.Minutes - a.Minutes
	})

	return out
}

// Build computes the report at now over a heatmap of weeks weeks.
func Build(s *analytics.Store, now time.Time, weeks int) *Report {
	if weeks <= 0 {
		weeks = analytics.DefaultHeatmapWeeks
	}

	data := s.Data()

	return &Report{
		GeneratedAt:   now,
		Weekly:        s.WeeklyStats(now),
		Tags:          sortedTags(s.TagTotals()),
		Heatmap:       s.Heatmap(now, weeks),
		TotalMinutes:  data.TotalMinutes,
		TotalSessions: len(data.Sessions),
		TodayMinutes:  s.TodayMinutes(now),
		CurrentStreak: data.CurrentStreak,
		LongestStreak: data.LongestStreak,
		HeatmapWeeks:  weeks,
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// getSummary renders the totals and streaks.
func getSummary(r *Report) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeLogged := fmt.Sprintf(
		"Time logged: %s\n",
		ui.Green(timeutil.FormatMinutes(r.TotalMinutes)),
	)

	today := fmt.Sprintf(
		"Today: %s\n",
		ui.Green(timeutil.FormatMinutes(r.TodayMinutes)),
	)

	completed := fmt.Sprintln(
		"Sessions completed:",
		ui.Green(r.TotalSessions),
	)

	streaks := fmt.Sprintf(
		"Current streak: %s\nLongest streak: %s\n",
		ui.Green(plural(r.CurrentStreak, "day")),
		ui.Green(plural(r.LongestStreak, "day")),
	)

	return header + timeLogged + today + completed + streaks
}

// getBarChart renders the minutes of the last seven days.
func getBarChart(days []analytics.DayBucket) string {
	if len(days) == 0 {
		return ""
	}

	header := ui.Blue("\nLast 7 days (minutes)")

	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		bars = append(bars, pterm.Bar{
			Value: d.Minutes,
			Label: d.Day + " " + d.Date[5:],
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// getTags renders the tag breakdown.
func getTags(r *Report) string {
	if len(r.Tags) == 0 || r.TotalMinutes == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(ui.Blue("\nTags\n"))

	for _, t := range r.Tags {
		percent := float64(t.Minutes) * 100 / float64(r.TotalMinutes)

		builder.WriteString(fmt.Sprintf(
			"%s: %s (%s%%)\n",
			ui.Highlight(t.Tag),
			ui.Green(timeutil.FormatMinutes(t.Minutes)),
			ui.Green(fmt.Sprintf("%.0f", percent)),
		))
	}

	return builder.String()
}

// getHeatmap renders one row per weekday and one column per week. The
// last column ends today.
func getHeatmap(cells []analytics.HeatmapCell) string {
	if len(cells) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(ui.Blue(fmt.Sprintf("\nActivity (%d weeks)\n", len(cells)/7)))

	weeks := (len(cells) + 6) / 7

	for row := range 7 {
		first, err := time.Parse(time.DateOnly, cells[row%len(cells)].Date)
		if err == nil {
			builder.WriteString(first.Format("Mon") + " ")
		}

		for col := range weeks {
			i := col*7 + row
			if i >= len(cells) {
				break
			}

			c := ui.HeatmapColor(cells[i].Level)
			builder.WriteString(c.Sprint(heatmapChar) + " ")
		}

		builder.WriteString("\n")
	}

	builder.WriteString("Less ")

	for level := range 5 {
		builder.WriteString(ui.HeatmapColor(level).Sprint(heatmapChar) + " ")
	}

	builder.WriteString("More\n")

	return builder.String()
}

// Show writes the human readable report to w.
func Show(w io.Writer, r *Report) {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Statistics as of %s", r.GeneratedAt.Format("January 02, 2006"))

	output := fmt.Sprint(
		header,
		getSummary(r),
		getTags(r),
		getBarChart(r.Weekly),
		getHeatmap(r.Heatmap),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
