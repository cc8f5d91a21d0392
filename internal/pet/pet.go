package pet

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capy/internal/session"
	"github.com/abhisek/capy/internal/ui/theme"
)

// Name is the pet's name, used in captions and the example corner title.
const Name = "Capy"

const artIdle = `  ╭─────╮
  │ ◉ ◉ │
  │  ▽  │
  ╰┬───┬╯`

const artHello = `  ╭─────╮  /
  │ ^ ^ │ /
  │  ▽  │╯
  ╰┬───┬╯`

const artStats = `  ╭─────╮ ▂▄▆
  │ ◉ ◉ │ ╱
  │  ~  │╯
  ╰┬───┬╯`

const artFast = `  ╭─────╮  !
  │ ◎ ◎ │ ⏱
  │  o  │
  ╰┬───┬╯`

const artCongrats = `  ✦ ╭─────╮ ✦
    │ ★ ★ │
    │  ◡  │
  ✦ ╰┬───┬╯ ✦
     ╚═══╝`

const artCorner = `  ╭─────╮
  │○-○  │ ∑
  │  ▽  │╱
  ╰┬───┬╯`

const artHelp = `      ?
  ╭───────╮ \
  │ ◉   ◉ │ |
  │   ▽   │╯
  │  ±×÷  │
  ╰─┬───┬─╯`

// Art returns the raw ASCII art for a pose. Unknown poses fall back to idle.
func Art(p session.Pose) string {
	switch p {
	case session.PoseHello:
		return artHello
	case session.PoseStats:
		return artStats
	case session.PoseFast:
		return artFast
	case session.PoseCongrats:
		return artCongrats
	case session.PoseCorner:
		return artCorner
	case session.PoseHelp:
		return artHelp
	}
	return artIdle
}

// Caption returns the alt text for a pose.
func Caption(p session.Pose) string {
	return "Teacher's Pet - " + p.String()
}

// Render returns the pose's art styled in its color.
func Render(p session.Pose) string {
	return lipgloss.NewStyle().
		Foreground(poseColor(p)).
		Render(Art(p))
}

func poseColor(p session.Pose) color.Color {
	switch p {
	case session.PoseFast:
		return theme.Accent
	case session.PoseStats:
		return theme.Secondary
	case session.PoseCongrats:
		return theme.Gold
	case session.PoseHelp:
		return theme.Success
	}
	return theme.Primary
}
