package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultThemeSidebarMetrics(t *testing.T) {
	t.Parallel()

	th := DefaultTheme()
	require.Greater(t, th.Sidebar.ExpandedWidth, th.Sidebar.CompactedWidth)
	require.Positive(t, th.Sidebar.CompactedWidth)
}

func TestStylesUsePalette(t *testing.T) {
	t.Parallel()

	th := DefaultTheme()
	styles := th.Styles()

	require.Equal(t, th.Palette.Primary.Base, styles.SelectedItem.GetBackground())
	require.Equal(t, th.Palette.Surface.Muted, styles.Sidebar.GetBackground())
	require.Equal(t, th.Borders.Thick, styles.FixedSidebar.GetBorderStyle())
	require.True(t, styles.SelectedItem.GetBold())
}
