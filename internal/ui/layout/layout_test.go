package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("看字选音", "★ 3", 90)
	for _, want := range []string{AppName, "看字选音", "★ 3"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if w := lipgloss.Width(h); w != 90 {
		t.Errorf("header width = %d, want 90", w)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{"Enter", "Next"}, {"Esc", "Home"}}, 90)
	for _, want := range []string{"Enter", "Next", "Esc", "Home", "·"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("frame height = %d, want 30", got)
	}
}

func TestSizeChecks(t *testing.T) {
	if !IsTooSmall(79, 24) || !IsTooSmall(80, 23) || IsTooSmall(80, 24) {
		t.Error("unexpected IsTooSmall results")
	}
	if !IsCompactHeight(29) || IsCompactHeight(30) {
		t.Error("unexpected IsCompactHeight results")
	}
	if ScoreStatus(7) != "★ 7" {
		t.Errorf("ScoreStatus = %q", ScoreStatus(7))
	}
	if !strings.Contains(RenderMinSizeMessage(40, 10), "窗口太小啦") {
		t.Error("min size message missing")
	}
}
