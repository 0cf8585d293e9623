package sessionstore

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Group is a named set of tabs, one per window. Tabs alias the store
// they came from.
type Group struct {
	Name string
	Tabs []Tab
}

// GroupOptions selects which windows Groups flattens and how the result
// is ordered.
type GroupOptions struct {
	// OpenWindows includes currently open windows.
	OpenWindows bool
	// ClosedWindows includes recently closed windows after the open ones.
	ClosedWindows bool
	// SortByName orders groups alphabetically instead of by window
	// position. Open and closed windows are sorted separately so closed
	// ones stay at the end.
	SortByName bool
}

// Groups flattens a store into named tab groups. Windows without a
// user-assigned name become "Window 1", "Window 2", ... and closed ones
// "Closed window 1", ... counted in document order.
func Groups(st *Store, opt GroupOptions) []Group {
	var open, closed []Group
	if opt.OpenWindows {
		for i := range st.Windows {
			open = append(open, newGroup(&st.Windows[i], fmt.Sprintf("Window %d", i+1)))
		}
	}
	if opt.ClosedWindows {
		for i := range st.ClosedWindows {
			closed = append(closed, newGroup(&st.ClosedWindows[i], fmt.Sprintf("Closed window %d", i+1)))
		}
	}
	if opt.SortByName {
		sortGroups(open)
		sortGroups(closed)
	}
	return append(open, closed...)
}

func sortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})
}

func newGroup(w *Window, defaultName string) Group {
	name, ok := w.Name()
	if !ok {
		name = defaultName
	}
	return Group{Name: name, Tabs: w.Tabs}
}

// windowNameKeys are extension storage keys carrying a user-assigned
// window name. The stored value is a JSON string nested inside a JSON
// string.
var windowNameKeys = []string{
	"extension:{c28e42b2-28b5-45f0-bdc8-6989ae7e6a7e}:name",       // Tab count in window title
	"extension:{5df6e133-f35d-4c62-885a-56387df22f6b}:windowName", // Other window
}

// Name returns the user-assigned window name, from window naming
// extensions or from a pinned group tab leading the window. Unnamed
// windows report false.
func (w *Window) Name() (string, bool) {
	if name, ok := w.extensionName(); ok {
		return name, ok
	}
	if len(w.Tabs) == 0 || !w.Tabs[0].Pinned {
		return "", false
	}
	entry, ok := w.Tabs[0].CurrentEntry()
	if !ok {
		return "", false
	}
	group, ok := ParseGroupTabURL(entry.URL)
	if !ok {
		return "", false
	}
	if entry.Title == "" || entry.Title == entry.URL {
		// The stored title does not represent the group name, fall back
		// to the name embedded in the URL.
		if group.Title == "" {
			return "", false
		}
		return group.Title, true
	}
	return entry.Title, true
}

func (w *Window) extensionName() (string, bool) {
	if len(w.ExtData) == 0 {
		return "", false
	}
	var ext map[string]json.RawMessage
	if err := json.Unmarshal(w.ExtData, &ext); err != nil {
		return "", false
	}
	for _, key := range windowNameKeys {
		raw, ok := ext[key]
		if !ok {
			continue
		}
		var quoted string
		if err := json.Unmarshal(raw, &quoted); err != nil {
			continue
		}
		var name string
		if err := json.Unmarshal([]byte(quoted), &name); err != nil || name == "" {
			continue
		}
		return name, true
	}
	return "", false
}

// legacyGroupURL is the group tab URL Tree Style Tab used before it
// became a web extension.
const legacyGroupURL = "about:treestyletab-group"

// GroupTab is a tab-management extension's group tab, parsed from the
// tab URL.
type GroupTab struct {
	// Title is the decoded group name, empty when the URL carries none.
	Title string
	// Temporary marks groups the extension cleans up on its own.
	Temporary bool
	// InternalID is the extension internal id, empty for the legacy URL.
	InternalID string
}

// ParseGroupTabURL recognizes Tree Style Tab and Sidebery group tab
// URLs and extracts the group name.
func ParseGroupTabURL(raw string) (GroupTab, bool) {
	var info GroupTab

	rest, found := strings.CutPrefix(raw, legacyGroupURL)
	if !found {
		rest, found = strings.CutPrefix(raw, "moz-extension://")
		if !found {
			return GroupTab{}, false
		}
		id, tail, found := strings.Cut(rest, "/")
		if !found {
			return GroupTab{}, false
		}
		info.InternalID = id
		if after, found := strings.CutPrefix(tail, "resources/group-tab.html"); found {
			rest = after
		} else if after, found := strings.CutPrefix(tail, "sidebery/group.html"); found {
			// Sidebery keeps the name in the fragment.
			if name, found := strings.CutPrefix(after, "#"); found {
				if decoded, err := url.QueryUnescape(name); err == nil {
					info.Title = decoded
				}
			}
			return info, true
		} else {
			return GroupTab{}, false
		}
	}

	query, found := strings.CutPrefix(rest, "?")
	if !found {
		return info, true
	}
	for _, pair := range strings.Split(query, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		switch key {
		case "title":
			if decoded, err := url.QueryUnescape(value); err == nil {
				info.Title = decoded
			}
		case "temporary":
			switch strings.ToLower(value) {
			case "true":
				info.Temporary = true
			case "false":
				info.Temporary = false
			}
		}
	}
	return info, true
}
