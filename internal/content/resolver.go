// Package content resolves the display text of an invitation page. It owns
// the static per-language template tables and the design/deity/language
// catalogs, and applies a strict three-tier precedence when resolving any
// string: per-profile override, selected-language template, English template.
// Every resolution is a pure function of its inputs and always produces a
// usable string.
package content

import (
	"sort"
	"strings"
)

// Overrides is the per-profile custom text, keyed language -> "section.key".
// The composite key keeps the precedence rule a flat two-level lookup.
type Overrides map[string]map[string]string

// ResolveText returns the string to display for (lang, section, key).
// Precedence, first hit wins:
//  1. the profile override for that language and composite key, if non-empty
//  2. the selected language's template
//  3. the English template
//  4. the literal key, so a missing translation degrades to a visible
//     placeholder instead of blank UI
func ResolveText(lang, section, key string, o Overrides) string {
	if langOverrides, ok := o[lang]; ok {
		if v, ok := langOverrides[section+"."+key]; ok && v != "" {
			return v
		}
	}
	if v, ok := lookupTemplate(lang, section, key); ok {
		return v
	}
	if v, ok := lookupTemplate(DefaultLanguage, section, key); ok {
		return v
	}
	return key
}

// ResolveSection resolves every key of a section at once. The English table
// fixes the key set (it is the schema of what exists), so partial language
// tables and overrides can never make a key vanish or appear. Unknown
// sections yield an empty, non-nil map.
func ResolveSection(lang, section string, o Overrides) map[string]string {
	schema := templates[DefaultLanguage][section]
	resolved := make(map[string]string, len(schema))
	for key := range schema {
		resolved[key] = ResolveText(lang, section, key, o)
	}
	return resolved
}

func lookupTemplate(lang, section, key string) (string, bool) {
	table, ok := templates[lang]
	if !ok {
		return "", false
	}
	keys, ok := table[section]
	if !ok {
		return "", false
	}
	v, ok := keys[key]
	return v, ok
}

// Sections lists the schema's section names in sorted order.
func Sections() []string {
	sections := make([]string, 0, len(templates[DefaultLanguage]))
	for name := range templates[DefaultLanguage] {
		sections = append(sections, name)
	}
	sort.Strings(sections)
	return sections
}

// SectionKeys lists the schema's keys for one section in sorted order.
func SectionKeys(section string) []string {
	schema := templates[DefaultLanguage][section]
	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// KnownLanguage reports whether the platform ships a template table for the
// given code. Unknown codes are not an error anywhere in the resolver; they
// simply miss tiers 1 and 2.
func KnownLanguage(code string) bool {
	_, ok := templates[strings.ToLower(code)]
	return ok
}
