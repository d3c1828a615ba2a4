package precedence

import (
	"github.com/funvibe/hsfront/internal/config"
)

// FromConfig builds the table described by a project configuration.
func FromConfig(c config.PrecedenceConfig) *Table {
	if len(c.Levels) == 0 {
		if c.Application == config.ApplicationHighest {
			return Complete(ApplicationHighest)
		}
		return Complete(ApplicationLowest)
	}
	levels := make([]Level, 0, len(c.Levels))
	for _, lc := range c.Levels {
		lvl := Level{Infix: lc.Infix, Prefix: lc.Prefix}
		if lc.Assoc == config.AssocRight {
			lvl.Assoc = Right
		}
		levels = append(levels, lvl)
	}
	return NewTable(levels...)
}
