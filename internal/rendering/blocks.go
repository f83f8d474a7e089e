package rendering

// sectionHeader draws a full-width slate banner with white bold text
func (c *cursor) sectionHeader(title string) {
	c.left()
	c.font("B", 11)
	c.fill(slateFill)
	c.textColor(white)
	c.cell(OpFill, BlockSection, 0, c.cfg.SectionHeaderHeight, title, "C", true)
	c.textColor(black)
}

// roleHeader draws a full-width beige banner with black bold text
func (c *cursor) roleHeader(block Block, title string) {
	c.left()
	c.font("B", 11)
	c.fill(beigeFill)
	c.textColor(black)
	c.cell(OpFill, block, 0, c.cfg.RoleHeaderHeight, title, "C", true)
}

// paragraph places unbulleted wrapped text at the bullet indent
func (c *cursor) paragraph(block Block, text string) {
	c.font("", 10)
	c.pdf.SetX(c.cfg.SideMargin + c.cfg.BulletIndent)
	c.wrap(block, c.cfg.bulletTextWidth(), text)
}

// bullet places a marker cell followed by wrapped text
func (c *cursor) bullet(block Block, text string) {
	c.font("", 10)
	c.pdf.SetX(c.cfg.SideMargin + c.cfg.BulletIndent)
	c.cell(OpText, block, c.cfg.BulletWidth, c.cfg.LineHeight, bulletGlyph, "", false)
	c.wrap(block, c.cfg.bulletTextWidth(), text)
}

// roleBlock draws a header and bullets enclosed in one border. The start
// mark is taken before the header so the box covers it; the rectangle is
// drawn only after all content has moved the cursor.
func (c *cursor) roleBlock(block Block, header, summary string, bullets []string) {
	m := c.mark()
	c.roleHeader(block, header)
	if c.page() != m.page {
		// the header itself moved to a new page; nothing is left above it
		m = boxMark{page: c.page(), y: c.cfg.TopMargin}
	}
	c.ln(c.cfg.InnerPad)
	if summary != "" {
		c.paragraph(block, summary)
	}
	for _, b := range bullets {
		c.bullet(block, b)
	}
	c.ln(c.cfg.InnerPad)
	c.closeBox(block, m)
}

// bulletBox draws bullets in a border with no header of its own
func (c *cursor) bulletBox(block Block, bullets []string) {
	m := c.mark()
	c.ln(c.cfg.InnerPad)
	for _, b := range bullets {
		c.bullet(block, b)
	}
	c.ln(c.cfg.InnerPad)
	c.closeBox(block, m)
}
