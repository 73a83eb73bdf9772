package overlay

// Expand turns one DrawUnit into the four stacked draw commands that give
// text its glow: wide faint halos first, then the solid fill. The first
// three passes use the neutral glow color, except for highlighted words,
// whose halo stays on-color. The final pass is always the unit's own color
// at full opacity with a thin border. Position, font size, and visibility
// window carry over verbatim to every pass.
func (c *Composer) Expand(u DrawUnit) []DrawText {
	enable := u.Window.Enable()
	commands := make([]DrawText, 0, len(c.style.Glow))
	for i, layer := range c.style.Glow {
		color := c.style.GlowColor
		if u.Highlighted || i == len(c.style.Glow)-1 {
			color = u.Color
		}
		commands = append(commands, DrawText{
			Text:        u.Text,
			X:           u.X,
			Y:           u.Y,
			FontSize:    u.FontSize,
			Color:       color,
			Alpha:       layer.Alpha,
			BorderColor: color,
			BorderAlpha: layer.BorderAlpha,
			BorderWidth: layer.BorderWidth,
			Font:        c.style.Font,
			FontFile:    c.style.FontFile,
			Enable:      enable,
		})
	}
	return commands
}
