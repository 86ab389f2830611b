package plex

import "fmt"

// DisplayTitle formats the media title for notification text based on the
// content type:
//
//	episode: Series (S01E02) - Episode Title
//	movie:   Title (Year)
//	track:   Artist - Title (Album: Name)
//
// Other types fall back to the bare title.
func (m *Metadata) DisplayTitle() string {
	switch m.Type {
	case "episode":
		series := m.GrandparentTitle
		if series == "" {
			series = "Unknown Series"
		}
		title := m.Title
		if title == "" {
			title = "Unknown Episode"
		}
		return fmt.Sprintf("%s (S%02dE%02d) - %s", series, m.ParentIndex, m.Index, title)

	case "movie":
		title := m.Title
		if title == "" {
			title = "Unknown Movie"
		}
		if m.Year != 0 {
			return fmt.Sprintf("%s (%d)", title, m.Year)
		}
		return title

	case "track":
		artist := m.GrandparentTitle
		if artist == "" {
			artist = "Unknown Artist"
		}
		title := m.Title
		if title == "" {
			title = "Unknown Track"
		}
		if m.ParentTitle != "" {
			return fmt.Sprintf("%s - %s (Album: %s)", artist, title, m.ParentTitle)
		}
		return fmt.Sprintf("%s - %s", artist, title)

	default:
		if m.Title == "" {
			return "Unknown Media"
		}
		return m.Title
	}
}
