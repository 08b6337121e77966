package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/diceroller/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗ ██████╗███████╗
 ██╔══██╗██║██╔════╝██╔════╝
 ██║  ██║██║██║     █████╗
 ██║  ██║██║██║     ██╔══╝
 ██████╔╝██║╚██████╗███████╗
 ╚═════╝ ╚═╝ ╚═════╝╚══════╝`

const bannerCompact = "D I C E   R O L L E R"

// RenderBanner returns the banner in the button color, or a one-line
// fallback below 32 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Button).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
