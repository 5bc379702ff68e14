package components

import "github.com/charmbracelet/lipgloss"

// ColourSet groups the colours of one semantic role.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette holds the semantic colour roles.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// PaletteSlot selects a role from a palette.
type PaletteSlot func(Palette) ColourSet

// Palette slots.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// TypographyVariant names a text style of the theme.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographyLabel
	TypographyMuted
	TypographyError
	TypographyCode
)

// TypographyScale holds the text styles.
type TypographyScale struct {
	Body  lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Code  lipgloss.Style
}

// InputStyles are the frames of input widgets by state.
type InputStyles struct {
	Default  lipgloss.Style
	Focus    lipgloss.Style
	Invalid  lipgloss.Style
	Disabled lipgloss.Style
}

// OptionStyles style dropdown rows and calendar cells.
type OptionStyles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
	Today    lipgloss.Style
}

// Theme is an immutable set of styles.
type Theme struct {
	Name       string
	Palette    Palette
	Typography TypographyScale
	Input      InputStyles
	Option     OptionStyles
	Border     lipgloss.Border
}

func lightDark(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultPalette() Palette {
	return Palette{
		Primary: ColourSet{Base: lightDark("#2563EB", "#60A5FA"), OnBase: lightDark("#FFFFFF", "#0B1120"), Muted: lightDark("#DBEAFE", "#1E3A8A")},
		Surface: ColourSet{Base: lightDark("#FFFFFF", "#0F172A"), OnBase: lightDark("#0F172A", "#E2E8F0"), Muted: lightDark("#F1F5F9", "#1E293B")},
		Success: ColourSet{Base: lightDark("#16A34A", "#4ADE80"), OnBase: lightDark("#FFFFFF", "#052E16"), Muted: lightDark("#DCFCE7", "#14532D")},
		Warning: ColourSet{Base: lightDark("#D97706", "#FBBF24"), OnBase: lightDark("#FFFFFF", "#451A03"), Muted: lightDark("#FEF3C7", "#78350F")},
		Danger:  ColourSet{Base: lightDark("#DC2626", "#F87171"), OnBase: lightDark("#FFFFFF", "#450A0A"), Muted: lightDark("#FEE2E2", "#7F1D1D")},
		Neutral: ColourSet{Base: lightDark("#64748B", "#94A3B8"), OnBase: lightDark("#FFFFFF", "#0F172A"), Muted: lightDark("#CBD5E1", "#475569")},
	}
}

func newTheme(name string, p Palette) Theme {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Theme{
		Name:    name,
		Palette: p,
		Typography: TypographyScale{
			Body:  lipgloss.NewStyle().Foreground(p.Surface.OnBase),
			Title: lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base),
			Label: lipgloss.NewStyle().Bold(true).Foreground(p.Surface.OnBase),
			Muted: lipgloss.NewStyle().Foreground(p.Neutral.Base),
			Error: lipgloss.NewStyle().Foreground(p.Danger.Base),
			Code:  lipgloss.NewStyle().Foreground(p.Warning.Base),
		},
		Input: InputStyles{
			Default:  frame.BorderForeground(p.Neutral.Muted),
			Focus:    frame.BorderForeground(p.Primary.Base),
			Invalid:  frame.BorderForeground(p.Danger.Base),
			Disabled: frame.BorderForeground(p.Neutral.Muted).Foreground(p.Neutral.Base),
		},
		Option: OptionStyles{
			Normal:   lipgloss.NewStyle().Foreground(p.Surface.OnBase),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Primary.OnBase).Background(p.Primary.Base),
			Focused:  lipgloss.NewStyle().Underline(true).Foreground(p.Primary.Base),
			Disabled: lipgloss.NewStyle().Strikethrough(true).Foreground(p.Neutral.Muted),
			Today:    lipgloss.NewStyle().Bold(true).Foreground(p.Warning.Base),
		},
		Border: lipgloss.RoundedBorder(),
	}
}

// DefaultTheme adapts to the terminal background.
func DefaultTheme() Theme {
	return newTheme("default", defaultPalette())
}

// DarkTheme pins every colour to its dark variant.
func DarkTheme() Theme {
	return newTheme("dark", pinPalette(defaultPalette(), false))
}

// LightTheme pins every colour to its light variant.
func LightTheme() Theme {
	return newTheme("light", pinPalette(defaultPalette(), true))
}

func pinPalette(p Palette, light bool) Palette {
	pin := func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		if light {
			return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
		}
		return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
	}
	set := func(s ColourSet) ColourSet {
		return ColourSet{Base: pin(s.Base), OnBase: pin(s.OnBase), Muted: pin(s.Muted)}
	}
	return Palette{
		Primary: set(p.Primary),
		Surface: set(p.Surface),
		Success: set(p.Success),
		Warning: set(p.Warning),
		Danger:  set(p.Danger),
		Neutral: set(p.Neutral),
	}
}

// ThemeByName returns the named theme, or false when the name is unknown.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return Theme{}, false
	}
}

// TypographyStyle returns the style of a typography variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyTitle:
		return theme.Typography.Title
	case TypographyLabel:
		return theme.Typography.Label
	case TypographyMuted:
		return theme.Typography.Muted
	case TypographyError:
		return theme.Typography.Error
	case TypographyCode:
		return theme.Typography.Code
	default:
		return theme.Typography.Body
	}
}

// Foreground colours the text with a palette role.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Foreground(slot(theme.Palette).Base)
	}
}

// Background fills with a palette role and uses its matching text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		set := slot(theme.Palette)
		return s.Background(set.Base).Foreground(set.OnBase)
	}
}

// Typography inherits a typography variant.
func Typography(variant TypographyVariant) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Inherit(TypographyStyle(theme, variant))
	}
}

// Bordered draws the theme border in a palette role.
func Bordered(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Border(theme.Border).BorderForeground(slot(theme.Palette).Base)
	}
}

// PaddingX pads left and right.
func PaddingX(n int) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.PaddingLeft(n).PaddingRight(n)
	}
}
