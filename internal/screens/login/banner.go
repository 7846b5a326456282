package login

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/weakspot/internal/ui/theme"
)

const bannerArt = `██╗    ██╗███████╗ █████╗ ██╗  ██╗███████╗██████╗  ██████╗ ████████╗
██║    ██║██╔════╝██╔══██╗██║ ██╔╝██╔════╝██╔══██╗██╔═══██╗╚══██╔══╝
██║ █╗ ██║█████╗  ███████║█████╔╝ ███████╗██████╔╝██║   ██║   ██║
██║███╗██║██╔══╝  ██╔══██║██╔═██╗ ╚════██║██╔═══╝ ██║   ██║   ██║
╚███╔███╔╝███████╗██║  ██║██║  ██╗███████║██║     ╚██████╔╝   ██║
 ╚══╝╚══╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝      ╚═════╝    ╚═╝`

const bannerCompact = "W E A K S P O T"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 68

// renderBanner returns the app banner, falling back to spaced letters
// when width cannot fit the block art.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
