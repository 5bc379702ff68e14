// Package components renders the toolkit's widgets as terminal text with
// lipgloss.
//
// Components are built fluently and rendered with View, or with
// ViewWithContext to pick a theme:
//
//	field := components.NewTextField("Quantity").
//		WithValue("abc").
//		WithErrors(map[string]string{"number": "Number"})
//	out := field.ViewWithContext(components.DefaultContext().WithTheme(components.DarkTheme()))
//
// Themes are plain values passed through RenderContext; nothing is global.
// Style functions (StyleFunc) read the theme and adjust a lipgloss.Style, so
// any component accepts extra styling through WithAppliers:
//
//	components.NewText("Meeting").WithAppliers(
//		components.Typography(components.TypographyTitle),
//		components.Foreground(components.PalettePrimary),
//	)
//
// Widgets:
//   - Text, Badge, Card, Stack: presentation primitives
//   - TextField: label, value or placeholder, validation messages
//   - Dropdown: time options with selected and disabled markers
//   - Checkbox: a labelled toggle
//   - Collapsible: a body cropped to a number of lines with an expand toggle
//   - Calendar: a month grid with today, selection, focus and disabled days
package components
