package components

import "github.com/charmbracelet/lipgloss"

// BadgeVariant selects the colours of a badge.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgePrimary
	BadgeSuccess
	BadgeWarning
	BadgeDanger
)

// Badge is a short status label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// View renders with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.variantStyle(ctx.Theme).Inherit(b.ComputeStyle(ctx.Theme))
	return style.Render(b.text)
}

func (b *Badge) variantStyle(theme Theme) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	switch b.variant {
	case BadgePrimary:
		return Background(PalettePrimary)(s, theme)
	case BadgeSuccess:
		return Background(PaletteSuccess)(s, theme)
	case BadgeWarning:
		return Background(PaletteWarning)(s, theme)
	case BadgeDanger:
		return Background(PaletteDanger)(s, theme)
	default:
		return Background(PaletteNeutral)(s, theme)
	}
}

// WithVariant sets the variant.
func (b *Badge) WithVariant(v BadgeVariant) *Badge {
	b.variant = v
	return b
}

// WithAppliers adds theme-aware style functions.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the label.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}
