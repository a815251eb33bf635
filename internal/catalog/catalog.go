// Package catalog enumerates the Gcore API surface exposed as tools. The
// catalog is declared statically, built once at startup, and read-only for
// the process lifetime; every tool name is a dot-delimited path of the form
// service.resource.action with at least two segments.
package catalog

import (
	"fmt"
	"strings"
	"sync"
)

// Safety classifies how intrusive a tool invocation is. It gates
// registration under read-only and disable-destructive configurations.
type Safety string

const (
	SafetyReadOnly    Safety = "read_only"
	SafetyWrite       Safety = "write"
	SafetyRiskyWrite  Safety = "risky_write"
	SafetyDestructive Safety = "destructive"
)

// Tool is one invocable catalog entry.
type Tool struct {
	Name        string
	Description string
	Safety      Safety
}

// Catalog is an ordered, duplicate-free set of tools.
type Catalog struct {
	tools []Tool
	index map[string]int
}

// New builds a catalog from ordered name lists. Names must be unique across
// all lists and carry at least two dotted segments.
func New(lists ...[]string) (*Catalog, error) {
	cat := &Catalog{index: map[string]int{}}
	for _, list := range lists {
		for _, name := range list {
			if strings.Count(name, ".") < 1 {
				return nil, fmt.Errorf("invalid tool name %q: need at least two segments", name)
			}
			if _, exists := cat.index[name]; exists {
				return nil, fmt.Errorf("duplicate tool name %q", name)
			}
			cat.index[name] = len(cat.tools)
			cat.tools = append(cat.tools, Tool{
				Name:        name,
				Description: describe(name),
				Safety:      classify(name),
			})
		}
	}
	return cat, nil
}

// Names returns the tool names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tools))
	for i, tool := range c.tools {
		names[i] = tool.Name
	}
	return names
}

// Tools returns the entries in catalog order.
func (c *Catalog) Tools() []Tool {
	return append([]Tool{}, c.tools...)
}

func (c *Catalog) Get(name string) (Tool, bool) {
	i, ok := c.index[name]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.tools)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the full Gcore catalog. The static lists are checked at
// build time by tests, so a construction failure here is a programming
// error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := New(cloudTools, waapTools, dnsTools)
		if err != nil {
			panic(err)
		}
		defaultCat = cat
	})
	return defaultCat
}

func describe(name string) string {
	return fmt.Sprintf("Proxy for the Gcore %s API method.", name)
}

// classify derives the safety class from the final (verb) segment.
func classify(name string) Safety {
	parts := strings.Split(name, ".")
	verb := parts[len(parts)-1]
	switch {
	case verb == "delete":
		return SafetyDestructive
	case verb == "list" || verb == "get" ||
		strings.HasPrefix(verb, "list_") || strings.HasPrefix(verb, "get_"):
		return SafetyReadOnly
	case riskyVerbs[verb]:
		return SafetyRiskyWrite
	default:
		return SafetyWrite
	}
}

// Verbs that reshape or power-cycle live resources without destroying them.
var riskyVerbs = map[string]bool{
	"resize":                  true,
	"rebuild":                 true,
	"reboot":                  true,
	"powercycle":              true,
	"reboot_all_servers":      true,
	"powercycle_all_servers":  true,
	"failover":                true,
	"start":                   true,
	"stop":                    true,
	"suspend":                 true,
	"resume":                  true,
	"revert":                  true,
	"revert_to_last_snapshot": true,
	"revert_to_default":       true,
	"change_type":             true,
}
