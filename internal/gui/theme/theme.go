package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	background = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	foreground = color.NRGBA{R: 0xD9, G: 0xD9, B: 0xD9, A: 0xFF}
	accent     = color.NRGBA{R: 0x00, G: 0xFF, B: 0x88, A: 0xFF}
	unused     = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF}
)

// CustomTheme is a dark theme with a green accent for the active slot
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new custom theme
func NewCustomTheme() *CustomTheme {
	return &CustomTheme{
		Theme: theme.DefaultTheme(),
	}
}

// Icon returns a custom icon for the given name
func (t *CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	switch name {
	case theme.IconNameContentClear:
		return theme.DeleteIcon()
	default:
		return t.Theme.Icon(name)
	}
}

// Color returns a custom color for the given name. The variant is ignored;
// the window is always dark.
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return background
	case theme.ColorNameForeground:
		return foreground
	case theme.ColorNamePrimary, theme.ColorNameSuccess:
		return accent
	case theme.ColorNameDisabled, theme.ColorNamePlaceHolder:
		return unused
	default:
		return t.Theme.Color(name, theme.VariantDark)
	}
}

// Size returns a custom size for the given name
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameText:
		return 13
	default:
		return t.Theme.Size(name)
	}
}
