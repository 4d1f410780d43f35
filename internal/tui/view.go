// internal/tui/view.go
//
// Phase renderers. Rendering is a pure read of orchestrator and mechanic
// state; nothing here mutates the round.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jcljest/holiday-panic-factory/internal/catalog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	quadrantStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#33CC33"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#CC3333"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9A521"))
)

func tierStyle(tier catalog.Tier) lipgloss.Style {
	switch tier {
	case catalog.TierNightmare:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C83232"))
	case catalog.TierStandard:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#C8C864"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#64C864"))
	}
}

// controlLegend mirrors the four stations' key bindings.
var controlLegend = []struct {
	station string
	keys    string
	desc    string
}{
	{"P1 Builder", "a/d", "Hammer either key to keep quality up"},
	{"P2 Wrapper", "space", "One press, inside the zone"},
	{"P3 Decorator", "arrows", "Enter the sequence in order"},
	{"P4 Foreman", "[ / ]", "Balance the needle"},
}

func (a *App) renderMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("HOLIDAY PANIC FACTORY"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Elf Panic! · 4-player local co-op"))
	b.WriteString("\n\n")
	for _, c := range controlLegend {
		b.WriteString(fmt.Sprintf("  %-13s %-7s %s\n",
			subtitleStyle.Render(c.station),
			warnStyle.Render(c.keys),
			dimStyle.Render(c.desc)))
	}
	if a.sink != nil && a.sink.Muted() {
		b.WriteString("\n" + dimStyle.Render("  muted (m to unmute)") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(a.mainMenu.View())
	return b.String()
}

func (a *App) renderBriefing() string {
	order := a.round.Order()
	tier := a.round.Tier()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("ROUND %d", a.round.Round())))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%q\n\n", order.Dialog))
	b.WriteString(fmt.Sprintf("Item:       %s\n", subtitleStyle.Render(order.Name)))
	b.WriteString(fmt.Sprintf("Time Limit: %.0fs\n", order.TimeLimit))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", tierStyle(tier).Render(tier.String())))
	b.WriteString("\n")
	b.WriteString(warnStyle.Render(fmt.Sprintf("Starting in %d...", int(a.round.Timer())+1)))
	return b.String()
}

func (a *App) renderPlaying() string {
	order := a.round.Order()

	timer := a.round.Timer()
	timerText := fmt.Sprintf("Time: %.1fs", timer)
	if timer < 5 {
		timerText = badStyle.Render(timerText)
	} else {
		timerText = goodStyle.Render(timerText)
	}
	topBar := fmt.Sprintf("Round %d   Order: %s   %s   Score: %d",
		a.round.Round(),
		titleStyle.Render(order.Name),
		timerText,
		a.round.Score())

	remaining := 0.0
	if order.TimeLimit > 0 {
		remaining = timer / order.TimeLimit
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderBuilderQuadrant(),
		a.renderWrapperQuadrant(),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderDecoratorQuadrant(),
		a.renderForemanQuadrant(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		topBar,
		a.timerBar.ViewAs(remaining),
		"",
		top,
		bottom,
	)
}

func (a *App) renderBuilderQuadrant() string {
	b := a.round.Builder()
	quality := b.Quality()

	status := badStyle
	if quality >= 0.5 {
		status = goodStyle
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("P1: BUILDER"),
		dimStyle.Render("Press a and d rapidly!"),
		"",
		a.qualityBar.ViewAs(quality),
		status.Render(fmt.Sprintf("%d%%", int(quality*100))),
	)
	return quadrantStyle.Render(content)
}

func (a *App) renderWrapperQuadrant() string {
	w := a.round.Wrapper()

	pos := w.Cursor()
	if w.HasPressed() {
		pos = w.PressPosition()
	}
	zoneStart := 0.5 - w.ZoneSize()/2
	zoneEnd := 0.5 + w.ZoneSize()/2
	track := renderTrack(trackWidth(a.width), pos, zoneStart, zoneEnd, w.HasPressed())

	verdict := ""
	if w.HasPressed() {
		verdict = dimStyle.Render("locked in")
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("P2: WRAPPER"),
		dimStyle.Render("Hit space in the green zone!"),
		"",
		track,
		verdict,
	)
	return quadrantStyle.Render(content)
}

func (a *App) renderDecoratorQuadrant() string {
	d := a.round.Decorator()
	seq := d.Sequence()

	var arrows strings.Builder
	for i, dir := range seq {
		if i > 0 && i%12 == 0 {
			arrows.WriteString("\n")
		}
		glyph := dir.Glyph() + " "
		switch {
		case i < d.Index():
			arrows.WriteString(goodStyle.Render(glyph))
		case i == d.Index():
			arrows.WriteString(warnStyle.Render(glyph))
		default:
			arrows.WriteString(dimStyle.Render(glyph))
		}
	}
	progressLine := fmt.Sprintf("Progress: %d/%d", d.Index(), len(seq))
	if d.Completed() {
		progressLine = goodStyle.Render("Done!")
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("P3: DECORATOR"),
		dimStyle.Render("Enter the sequence! (error = reset)"),
		warnStyle.Render(progressLine),
		arrows.String(),
	)
	return quadrantStyle.Render(content)
}

func (a *App) renderForemanQuadrant() string {
	f := a.round.Foreman()
	track := renderTrack(trackWidth(a.width), f.Needle(), 0.2, 0.8, false)

	content := lipgloss.JoinVertical(lipgloss.Left,
		subtitleStyle.Render("P4: FOREMAN"),
		dimStyle.Render("[ and ] to balance!"),
		"",
		track,
	)
	return quadrantStyle.Render(content)
}

func (a *App) renderReveal() string {
	result := a.round.Result()
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("QUALITY CONTROL"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Toy:  %s\n", giftStyle(result.Successes[0]).Render(result.Toy)))
	b.WriteString(fmt.Sprintf("  Wrap: %s\n", giftStyle(result.Successes[1]).Render(result.Wrap)))
	b.WriteString(fmt.Sprintf("  Bow:  %s\n", giftStyle(result.Successes[2]).Render(result.Bow)))
	b.WriteString("\n")
	b.WriteString(commentaryStyle(result.Score).Render(result.Commentary))
	b.WriteString("\n\n")

	stations := []string{"Builder", "Wrapper", "Decorator", "Foreman"}
	for i, station := range stations {
		mark := badStyle.Render("✗")
		if result.Successes[i] {
			mark = goodStyle.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %-10s %s\n", station, mark))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total score: %d\n\n", a.round.Score()))
	if a.round.Timer() <= 0 {
		b.WriteString(subtitleStyle.Render("Press ENTER for the next round"))
	} else {
		b.WriteString(dimStyle.Render("Inspecting..."))
	}
	return b.String()
}

func giftStyle(ok bool) lipgloss.Style {
	if ok {
		return goodStyle
	}
	return badStyle
}

func commentaryStyle(score int) lipgloss.Style {
	switch {
	case score == 4:
		return goodStyle
	case score == 3:
		return warnStyle
	case score == 2:
		return warnStyle
	default:
		return badStyle
	}
}

// trackWidth picks a track size that fits two quadrants side by side.
func trackWidth(width int) int {
	w := width/2 - 10
	if w < 16 {
		w = 24
	}
	return w
}

// renderTrack draws a horizontal gauge: zone cells shaded, the cursor cell
// solid. Positions are in [0,1] track units.
func renderTrack(width int, pos, zoneStart, zoneEnd float64, latched bool) string {
	if width < 2 {
		width = 2
	}
	cursor := int(pos * float64(width-1))
	var b strings.Builder
	for i := 0; i < width; i++ {
		at := float64(i) / float64(width-1)
		inZone := at >= zoneStart && at <= zoneEnd
		switch {
		case i == cursor && latched:
			if inZone {
				b.WriteString(goodStyle.Render("█"))
			} else {
				b.WriteString(badStyle.Render("█"))
			}
		case i == cursor:
			b.WriteString(warnStyle.Render("█"))
		case inZone:
			b.WriteString(goodStyle.Render("▒"))
		default:
			b.WriteString(dimStyle.Render("·"))
		}
	}
	return b.String()
}
