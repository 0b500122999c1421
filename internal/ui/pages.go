package ui

// Page is a markdown document shown in the central panel.
type Page struct {
	Title    string
	Markdown string
}

// DefaultPages returns the built-in pages of the demo program.
func DefaultPages() []Page {
	return []Page{
		{
			Title: "Welcome",
			Markdown: `# Welcome

Drag the page sideways with the mouse to reveal a side panel.
Dragging right opens the **menu**, dragging left opens the **status** panel.

Release past the middle of the panel and it snaps open; release short of it
and it snaps back. A click on the page closes an open panel.`,
		},
		{
			Title: "Keys",
			Markdown: `# Keys

| Key | Action |
| --- | --- |
| SPC h | toggle the menu |
| SPC l | toggle the status panel |
| SPC o h / SPC o l | open instantly |
| SPC x h / SPC x l / SPC x x | remove panel content |
| SPC r | restore removed panels |
| tab | focus the next visible panel |
| esc | close the open panel |
| q | quit |`,
		},
		{
			Title: "Configuration",
			Markdown: `# Configuration

Settings are read from ` + "`~/.config/menucontainer/config.toml`" + ` and from
` + "`MENUCONTAINER_*`" + ` environment variables.

- ` + "`drawer.side_panel_width`" + ` panel width in drawer units
- ` + "`drawer.animation_duration`" + ` slide and fade duration
- ` + "`drawer.shadow_opacity`" + ` shadow next to the page
- ` + "`drawer.overlay_alpha`" + ` dimming while a panel is open

Edits to the file apply the next time both panels are closed.`,
		},
	}
}
