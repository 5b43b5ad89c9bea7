// Package project holds the static per-project configuration table used to
// point users at variable documentation on the web.
//
// The table is read-only and fully initialized at package load; Lookup never
// mutates it. Unknown project identifiers resolve to a default config with no
// variable URL.
package project

import (
	"fmt"
	"slices"
	"strings"
)

// Config describes the web integration for one microdata project.
type Config struct {
	// HasVariableURL reports whether the project publishes per-variable
	// documentation pages.
	HasVariableURL bool

	// URLBuilder builds the documentation URL for a variable. It is nil when
	// HasVariableURL is false.
	URLBuilder func(variable string) string
}

func actionURL(site, path string) func(string) string {
	return func(variable string) string {
		return fmt.Sprintf("https://%s/%s/variables/%s#codes_section", site, path, strings.ToUpper(variable))
	}
}

var configs = map[string]Config{
	"IPUMS USA": {
		HasVariableURL: true,
		URLBuilder:     actionURL("usa.ipums.org", "usa-action"),
	},
	"IPUMS CPS": {
		HasVariableURL: true,
		URLBuilder:     actionURL("cps.ipums.org", "cps-action"),
	},
	"IPUMS International": {
		HasVariableURL: true,
		URLBuilder:     actionURL("international.ipums.org", "international-action"),
	},
	"IPUMS DHS": {
		HasVariableURL: true,
		URLBuilder: func(variable string) string {
			return fmt.Sprintf("https://www.idhsdata.org/idhs-action/variables/%s#codes_section", strings.ToUpper(variable))
		},
	},
	"IPUMS Health Surveys": {
		HasVariableURL: true,
		URLBuilder:     actionURL("nhis.ipums.org", "nhis-action"),
	},
	"IPUMS Time Use": {
		HasVariableURL: true,
		URLBuilder:     actionURL("timeuse.ipums.org", "timeuse-action"),
	},
	"IPUMS Higher Ed": {
		HasVariableURL: true,
		URLBuilder:     actionURL("highered.ipums.org", "highered-action"),
	},
	// Aggregate-data projects publish no per-variable pages.
	"IPUMS NHGIS": {},
	"IPUMS IHGIS": {},
}

// Lookup returns the config for the given project identifier. Unknown
// identifiers resolve to the zero Config (no variable URL, nil builder).
func Lookup(id string) Config {
	return configs[id]
}

// Known returns the known project identifiers in sorted order.
func Known() []string {
	ids := make([]string, 0, len(configs))
	for id := range configs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
