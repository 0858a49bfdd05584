package prompt

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// CustomStyle marks an advisor supplied by name only.
const CustomStyle = "custom"

// DefaultAdvisorIDs are used when the caller selects no advisors.
var DefaultAdvisorIDs = []string{"em", "wb", "sn"}

// Catalog is the roster of known advisors, grouped for display.
type Catalog struct {
	Title  string  `yaml:"title"`
	Groups []Group `yaml:"groups"`

	byID map[string]domain.AdvisorSpec
}

type Group struct {
	Name     string               `yaml:"name"`
	Advisors []domain.AdvisorSpec `yaml:"advisors"`
}

// ParseCatalog decodes a YAML advisor roster. Ids are case-insensitive and
// must be unique.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing advisor catalog: %w", err)
	}
	c.byID = make(map[string]domain.AdvisorSpec)
	for gi := range c.Groups {
		for ai := range c.Groups[gi].Advisors {
			a := &c.Groups[gi].Advisors[ai]
			a.ID = strings.ToLower(strings.TrimSpace(a.ID))
			if a.ID == "" || a.Name == "" {
				return nil, fmt.Errorf("advisor catalog: group %q entry %d needs id and name", c.Groups[gi].Name, ai)
			}
			if _, dup := c.byID[a.ID]; dup {
				return nil, fmt.Errorf("advisor catalog: duplicate id %q", a.ID)
			}
			c.byID[a.ID] = *a
		}
	}
	return &c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := ParseCatalog(advisorsYAML)
	if err != nil {
		panic(err)
	}
	return c
})

// DefaultCatalog returns the embedded advisor roster.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// Lookup returns the advisor with the given id.
func (c *Catalog) Lookup(id string) (domain.AdvisorSpec, bool) {
	a, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	return a, ok
}

// All returns every advisor in catalog order.
func (c *Catalog) All() []domain.AdvisorSpec {
	var out []domain.AdvisorSpec
	for _, g := range c.Groups {
		out = append(out, g.Advisors...)
	}
	return out
}

// Select resolves advisor ids and free-text custom names into at most
// domain.MaxAdvisors specs. Unknown or repeated ids are skipped; custom
// names follow the catalog advisors.
func (c *Catalog) Select(ids []string, custom []string) []domain.AdvisorSpec {
	out := make([]domain.AdvisorSpec, 0, domain.MaxAdvisors)
	seen := make(map[string]bool)
	for _, id := range ids {
		if len(out) == domain.MaxAdvisors {
			return out
		}
		a, ok := c.Lookup(id)
		if !ok || seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	for _, name := range custom {
		if len(out) == domain.MaxAdvisors {
			return out
		}
		name = strings.TrimSpace(name)
		if name == "" || seen["custom:"+name] {
			continue
		}
		seen["custom:"+name] = true
		out = append(out, domain.AdvisorSpec{Name: name, Style: CustomStyle})
	}
	return out
}

// Render formats the roster as the reference block of the system prompt.
func (c *Catalog) Render() string {
	var b strings.Builder
	b.WriteString("# " + c.Title + "\n")
	for _, g := range c.Groups {
		b.WriteString("\n## " + g.Name + "\n")
		for _, a := range g.Advisors {
			fmt.Fprintf(&b, "\n### %s - %s", a.Initials, a.Name)
			if a.NameEn != "" {
				fmt.Fprintf(&b, " (%s)", a.NameEn)
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "- 스타일: %s\n", a.Style)
			if a.Description != "" {
				fmt.Fprintf(&b, "- 화법: \"%s\"\n", a.Description)
			}
		}
	}
	return b.String()
}
