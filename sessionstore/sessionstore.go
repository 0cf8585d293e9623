// Package sessionstore reads Firefox session store files: the windows,
// tabs and history entries Firefox persists between restarts as mozLz4
// compressed JSON.
//
// Only the parts of the document the package works with are typed.
// Extension storage and other unstable subtrees are kept raw so that
// documents survive a decode without losing unknown fields the package
// has no business interpreting.
package sessionstore

import (
	"encoding/json"
	"io"

	"github.com/go-faster/errors"

	"github.com/go-faster/mozlz4"
)

// Store is the root of a session store document, the shape Firefox
// writes to sessionstore.jsonlz4 and its backups.
type Store struct {
	Version        Version         `json:"version"`
	Windows        []Window        `json:"windows,omitempty"`
	ClosedWindows  []Window        `json:"_closedWindows,omitempty"`
	SelectedWindow int64           `json:"selectedWindow"`
	Session        *Session        `json:"session,omitempty"`
	Global         json.RawMessage `json:"global,omitempty"`
}

// Version is the format tag leading every document, stored as a
// ["sessionrestore", 1] pair.
type Version struct {
	Name  string
	Major int64
}

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{v.Name, v.Major})
}

func (v *Version) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Wrap(err, "version pair")
	}
	*v = Version{}
	if len(parts) > 0 {
		if err := json.Unmarshal(parts[0], &v.Name); err != nil {
			return errors.Wrap(err, "name")
		}
	}
	if len(parts) > 1 {
		if err := json.Unmarshal(parts[1], &v.Major); err != nil {
			return errors.Wrap(err, "major")
		}
	}
	return nil
}

// Session is bookkeeping about the session file itself.
type Session struct {
	LastUpdate    int64 `json:"lastUpdate"`
	StartTime     int64 `json:"startTime"`
	RecentCrashes int64 `json:"recentCrashes"`
}

// Window is one browser window, open or recently closed.
type Window struct {
	Tabs       []Tab           `json:"tabs"`
	Selected   int64           `json:"selected,omitempty"`
	ClosedTabs []ClosedTab     `json:"_closedTabs,omitempty"`
	Busy       bool            `json:"busy,omitempty"`
	Width      int64           `json:"width,omitempty"`
	Height     int64           `json:"height,omitempty"`
	ScreenX    int64           `json:"screenX,omitempty"`
	ScreenY    int64           `json:"screenY,omitempty"`
	SizeMode   string          `json:"sizemode,omitempty"`
	Cookies    json.RawMessage `json:"cookies,omitempty"`
	ExtData    json.RawMessage `json:"extData,omitempty"`
}

// Tab is a tab together with its session history.
type Tab struct {
	Entries        []Entry         `json:"entries"`
	Index          int64           `json:"index,omitempty"`
	LastAccessed   int64           `json:"lastAccessed,omitempty"`
	Pinned         bool            `json:"pinned,omitempty"`
	Hidden         bool            `json:"hidden,omitempty"`
	UserContextID  int64           `json:"userContextId,omitempty"`
	UserTypedValue string          `json:"userTypedValue,omitempty"`
	Image          string          `json:"image,omitempty"`
	Attributes     json.RawMessage `json:"attributes,omitempty"`
	ExtData        json.RawMessage `json:"extData,omitempty"`
}

// Entry is one history entry of a tab. Children hold subframe history.
type Entry struct {
	URL      string  `json:"url"`
	Title    string  `json:"title,omitempty"`
	Charset  string  `json:"charset,omitempty"`
	Children []Entry `json:"children,omitempty"`
}

// ClosedTab wraps a tab the user closed together with when and where.
type ClosedTab struct {
	State    Tab    `json:"state"`
	Title    string `json:"title,omitempty"`
	Image    string `json:"image,omitempty"`
	Pos      int64  `json:"pos,omitempty"`
	ClosedAt int64  `json:"closedAt,omitempty"`
}

// CurrentEntry returns the history entry the tab is showing. The stored
// index is 1-based; zero, which unmarshalling uses for an absent index,
// and anything out of range report false.
func (t *Tab) CurrentEntry() (*Entry, bool) {
	i := t.Index - 1
	if i < 0 || i >= int64(len(t.Entries)) {
		return nil, false
	}
	return &t.Entries[i], true
}

// URL of the current entry, empty when there is none.
func (t *Tab) URL() string {
	e, ok := t.CurrentEntry()
	if !ok {
		return ""
	}
	return e.URL
}

// Title of the current entry, empty when there is none.
func (t *Tab) Title() string {
	e, ok := t.CurrentEntry()
	if !ok {
		return ""
	}
	return e.Title
}

// Decode decompresses a mozLz4 container with b and unmarshals the
// session store held in it.
func Decode(data []byte, b mozlz4.Backend) (*Store, error) {
	raw, err := mozlz4.Decode(data, b)
	if err != nil {
		return nil, errors.Wrap(err, "container")
	}
	var s Store
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, "session store json")
	}
	return &s, nil
}

// Read decodes a session store from r.
func Read(r io.Reader, b mozlz4.Backend) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	return Decode(data, b)
}
