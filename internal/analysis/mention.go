package analysis

import (
	"strings"
	"time"

	"scentid/internal/textnorm"
)

// Role marks a mention as the image's principal product or a secondary one.
type Role string

const (
	RolePrincipal Role = "principal"
	RoleSecondary Role = "secondary"
)

// Mention is one perfume identified in an analysis response.
type Mention struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Slug  string `json:"slug"`
	Role  Role   `json:"role"`
}

// FullName returns the "<name> - <brand>" form used by the annotation
// service, or just the name when no brand was identified.
func (m Mention) FullName() string {
	if m.Brand == "" {
		return m.Name
	}
	return m.Name + " - " + m.Brand
}

// Result is the structured outcome of analyzing one image.
type Result struct {
	Filename  string    `json:"filename"`
	Mentions  []Mention `json:"mentions"`
	Timestamp time.Time `json:"timestamp"`
}

// Principal returns the principal mention, if any. By construction it is the
// first mention when present.
func (r Result) Principal() (Mention, bool) {
	for _, m := range r.Mentions {
		if m.Role == RolePrincipal {
			return m, true
		}
	}
	return Mention{}, false
}

const notVisibleSentinel = "not visible"

// containsSentinel reports whether a raw line carries the annotation
// service's "nothing identified" marker in either bare or bracketed form.
func containsSentinel(line string) bool {
	lowered := strings.ToLower(line)
	return strings.Contains(lowered, notVisibleSentinel) ||
		strings.Contains(lowered, "["+notVisibleSentinel+"]")
}

// newMention builds a Mention from a "name - brand" line. It returns false
// when the line has no separator, either side is empty, or either side is the
// sentinel.
func newMention(line string, role Role) (Mention, bool) {
	if containsSentinel(line) {
		return Mention{}, false
	}
	name, brand, found := strings.Cut(line, " - ")
	if !found {
		return Mention{}, false
	}
	name = strings.TrimSpace(name)
	brand = strings.TrimSpace(brand)
	if name == "" || brand == "" {
		return Mention{}, false
	}
	if strings.EqualFold(name, notVisibleSentinel) || strings.EqualFold(brand, notVisibleSentinel) {
		return Mention{}, false
	}
	return Mention{
		Name:  name,
		Brand: brand,
		Slug:  textnorm.Slugify(name + " " + brand),
		Role:  role,
	}, true
}
