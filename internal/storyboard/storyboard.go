// Package storyboard reads a declarative panel wiring file: segue identifiers
// mapped to content names registered by the host program.
//
//	segues:
//	  CentralContainerSegue: home
//	  LeftContainerSegue: menu
//	  RightContainerSegue: settings
//
// Short identifiers (central, left, right) are accepted too. Identifiers that
// are absent leave their panel empty.
package storyboard

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"menucontainer/internal/drawer"
	"menucontainer/internal/panel"
)

// Segue identifiers.
const (
	CentralSegue = "CentralContainerSegue"
	LeftSegue    = "LeftContainerSegue"
	RightSegue   = "RightContainerSegue"
)

var segueIDs = map[string]panel.ID{
	CentralSegue: panel.Central,
	LeftSegue:    panel.Left,
	RightSegue:   panel.Right,
}

// Storyboard is a parsed wiring file.
type Storyboard struct {
	Segues map[string]string `yaml:"segues"`
}

// Registry maps content names to providers.
type Registry map[string]drawer.Provider

// Names returns the registered content names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Error is a storyboard misconfiguration.
type Error struct {
	Kind       string // "segue" or "content"
	Name       string
	Suggestion string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("storyboard: unknown %s %q", e.Kind, e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Parse decodes a storyboard document.
func Parse(data []byte) (*Storyboard, error) {
	var sb Storyboard
	if err := yaml.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("storyboard: parse: %w", err)
	}
	return &sb, nil
}

// Load reads and decodes the storyboard at path.
func Load(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storyboard: %w", err)
	}
	return Parse(data)
}

// ParseIdentifier maps a segue identifier to its panel.
func ParseIdentifier(s string) (panel.ID, bool) {
	if id, ok := segueIDs[s]; ok {
		return id, true
	}
	for _, id := range panel.All {
		if strings.EqualFold(s, id.String()) {
			return id, true
		}
	}
	return 0, false
}

// Resolve builds the drawer wiring for the registered content.
func (sb *Storyboard) Resolve(reg Registry) (drawer.Wiring, error) {
	w := drawer.Wiring{}
	idents := make([]string, 0, len(sb.Segues))
	for ident := range sb.Segues {
		idents = append(idents, ident)
	}
	sort.Strings(idents)

	for _, ident := range idents {
		id, ok := ParseIdentifier(ident)
		if !ok {
			return nil, &Error{Kind: "segue", Name: ident, Suggestion: suggest(ident, identifiers())}
		}
		if _, dup := w[id]; dup {
			return nil, fmt.Errorf("storyboard: %s panel wired twice", id)
		}
		name := sb.Segues[ident]
		p, ok := reg[name]
		if !ok {
			return nil, &Error{Kind: "content", Name: name, Suggestion: suggest(name, reg.Names())}
		}
		w[id] = p
	}
	return w, nil
}

func identifiers() []string {
	out := []string{CentralSegue, LeftSegue, RightSegue}
	for _, id := range panel.All {
		out = append(out, id.String())
	}
	return out
}

// suggest returns the closest candidate within a small edit distance, or "".
func suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
