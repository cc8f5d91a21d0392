package pet

import (
	"strings"
	"testing"

	"github.com/abhisek/capy/internal/session"
)

func TestArt_EveryPoseDistinct(t *testing.T) {
	seen := map[string]session.Pose{}
	for _, p := range session.AllPoses() {
		art := Art(p)
		if art == "" {
			t.Errorf("pose %s has no art", p)
		}
		if other, dup := seen[art]; dup {
			t.Errorf("poses %s and %s share art", p, other)
		}
		seen[art] = p
	}
}

func TestCaption(t *testing.T) {
	if got := Caption(session.PoseHelp); got != "Teacher's Pet - help" {
		t.Errorf("caption = %q", got)
	}
}

func TestRender_KeepsArt(t *testing.T) {
	out := Render(session.PoseCongrats)
	if !strings.Contains(out, "★ ★") {
		t.Errorf("rendered art lost its glyphs:\n%s", out)
	}
}
