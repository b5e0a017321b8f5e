package modules

import (
	"flag"
	"strings"
)

// A Selection is an ordered list of modules chosen for a build. It is
// populated through a repeatable command-line flag: duplicates are kept
// as given, not deduplicated, and order is selection order.
type Selection []Module

var _ flag.Value = (*Selection)(nil)

func (s *Selection) String() string {
	names := make([]string, len(*s))
	for i, m := range *s {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}

// Set appends one module to the selection. It returns an error for
// identifiers outside the documented set, which the flag parser reports
// as a usage error.
func (s *Selection) Set(value string) error {
	m, err := ParseModule(value)
	if err != nil {
		return err
	}

	*s = append(*s, m)
	return nil
}

// Features returns the cargo feature names of the selected modules, in
// selection order, duplicates included.
func (s Selection) Features() []string {
	features := make([]string, len(s))
	for i, m := range s {
		features[i] = m.Feature()
	}
	return features
}
