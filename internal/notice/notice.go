// Package notice models the transient success banners of list pages.
package notice

import (
	"net/url"
	"time"
)

// Query flags set by form redirects.
const (
	FlagCreated = "success"
	FlagUpdated = "updated"
)

// DefaultDismissAfter is how long a banner stays before it clears itself.
const DefaultDismissAfter = 3 * time.Second

// Kind is the event a banner reports.
type Kind int

const (
	None Kind = iota
	Created
	Updated
	Deleted
)

// Messages holds the banner text per kind for one entity.
type Messages struct {
	Created string
	Updated string
	Deleted string
}

// MessagesFor builds the standard messages, e.g. "Barang berhasil ditambahkan.".
func MessagesFor(entity string) Messages {
	return Messages{
		Created: entity + " berhasil ditambahkan.",
		Updated: entity + " berhasil diubah.",
		Deleted: entity + " berhasil dihapus.",
	}
}

func (m Messages) text(k Kind) string {
	switch k {
	case Created:
		return m.Created
	case Updated:
		return m.Updated
	case Deleted:
		return m.Deleted
	}
	return ""
}

// State is the banner state owned by a page. Dismissing is a pure transition.
type State struct {
	kind  Kind
	flag  string
	path  string
	query url.Values
}

// FromURL reads the redirect flag of u. success wins when both flags are present.
func FromURL(u *url.URL) State {
	s := State{path: u.Path, query: cloneValues(u.Query())}
	switch {
	case s.query.Get(FlagCreated) != "":
		s.kind, s.flag = Created, FlagCreated
	case s.query.Get(FlagUpdated) != "":
		s.kind, s.flag = Updated, FlagUpdated
	}
	return s
}

// Show replaces the current banner with k. Deleted banners never map to a URL flag.
func (s State) Show(k Kind) State {
	s.query = cloneValues(s.query)
	if s.flag != "" {
		s.query.Del(s.flag)
	}
	s.kind, s.flag = k, ""
	switch k {
	case Created:
		s.flag = FlagCreated
		s.query.Set(FlagCreated, "1")
	case Updated:
		s.flag = FlagUpdated
		s.query.Set(FlagUpdated, "1")
	}
	return s
}

// Dismiss hides the banner and drops its flag from the URL.
func (s State) Dismiss() State {
	s.query = cloneValues(s.query)
	if s.flag != "" {
		s.query.Del(s.flag)
	}
	s.kind, s.flag = None, ""
	return s
}

func (s State) Kind() Kind { return s.kind }

func (s State) Visible() bool { return s.kind != None }

// URL is the address matching the current state.
func (s State) URL() string {
	if len(s.query) == 0 {
		return s.path
	}
	return s.path + "?" + s.query.Encode()
}

// Banner is the view model rendered by the layout.
type Banner struct {
	Visible        bool
	Message        string
	DismissAfterMS int64
	// CleanURL replaces the address bar when the banner is dismissed.
	CleanURL string
}

// Banner renders the state with msgs. dismissAfter <= 0 uses DefaultDismissAfter.
func (s State) Banner(msgs Messages, dismissAfter time.Duration) Banner {
	if !s.Visible() {
		return Banner{}
	}
	if dismissAfter <= 0 {
		dismissAfter = DefaultDismissAfter
	}
	return Banner{
		Visible:        true,
		Message:        msgs.text(s.kind),
		DismissAfterMS: dismissAfter.Milliseconds(),
		CleanURL:       s.Dismiss().URL(),
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
