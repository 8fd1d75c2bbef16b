package display

import "strings"

const banner = `
        _       _            _           _
  _ __ | | __ _| |_ ___  ___| |__   __ _| |_
 | '_ \| |/ _` + "`" + ` | __/ _ \/ __| '_ \ / _` + "`" + ` | __|
 | |_) | | (_| | ||  __/ (__| | | | (_| | |_
 | .__/|_|\__,_|\__\___|\___|_| |_|\__,_|\__|
 |_|        what are we cooking today?
`

// RenderBanner returns the styled startup banner.
func RenderBanner() string {
	lines := strings.Split(strings.Trim(banner, "\n"), "\n")
	for i, l := range lines {
		lines[i] = BannerStyle.Render(l)
	}
	return strings.Join(lines, "\n")
}
