package components

// Card frames a titled group of components.
type Card struct {
	BaseComponent
	title    string
	subtitle string
	body     *Stack
}

// NewCard creates a card around children.
func NewCard(title string, children ...Renderable) *Card {
	c := &Card{BaseComponent: NewBaseComponent(), title: title, body: VStack(children...)}
	c.AddAppliers(Bordered(PaletteNeutral), PaddingX(1))
	return c
}

// WithSubtitle sets the muted line under the title.
func (c *Card) WithSubtitle(subtitle string) *Card {
	c.subtitle = subtitle
	return c
}

// Add appends children to the body.
func (c *Card) Add(children ...Renderable) *Card {
	c.body.Add(children...)
	return c
}

// WithAppliers adds theme-aware style functions.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// View renders with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with the context theme.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	content := VStack()
	if c.title != "" {
		content.Add(TitleText(c.title))
	}
	if c.subtitle != "" {
		content.Add(MutedText(c.subtitle))
	}
	if c.body.Len() > 0 {
		content.Add(c.body)
	}
	return c.ComputeStyle(ctx.Theme).Render(content.ViewWithContext(ctx))
}
