package client

// view.go render-time helpers: grouping for the content rows and the
// placeholder image substitution. Nothing here touches the network.

import "fmt"

// Categories the main view renders as named rows. Anything else groups
// under "other".
var knownCategories = []string{"Featured", "Web", "Creative"}

// DisplayImageURL is the image to render for an item: the stored URL, or a
// deterministic placeholder keyed by id when none was set. Never persisted.
func DisplayImageURL(imageURL string, id uint, width, height int) string {
	if imageURL != "" {
		return imageURL
	}
	return fmt.Sprintf("https://picsum.photos/seed/%d/%d/%d", id, width, height)
}

// ProjectsByCategory filters the project list for one row.
func ProjectsByCategory(projects []Project, category string) []Project {
	var out []Project
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// OtherProjects returns projects whose category is not one of the named
// rows.
func OtherProjects(projects []Project) []Project {
	known := make(map[string]bool, len(knownCategories))
	for _, c := range knownCategories {
		known[c] = true
	}

	var out []Project
	for _, p := range projects {
		if !known[p.Category] {
			out = append(out, p)
		}
	}
	return out
}

// ResumeByType filters resume entries by type ("experience" or
// "education").
func ResumeByType(entries []ResumeEntry, typ string) []ResumeEntry {
	var out []ResumeEntry
	for _, e := range entries {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
