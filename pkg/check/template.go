package check

import (
	"fmt"

	"github.com/dmitrymomot/localelint/pkg/keyset"
	"github.com/dmitrymomot/localelint/pkg/locales"
)

// checkTemplate verifies every locale file declares exactly the template's
// key set. Each mismatching file gets its own diagnostic block; checking
// continues across files so one run reports every problem.
func (c *Checker) checkTemplate(templateKeys keyset.Set) (bool, error) {
	files := c.cfg.LocaleFiles
	if len(files) == 0 {
		discovered, err := locales.Discover(c.locales, c.cfg.Extensions, c.cfg.ReservedPrefix)
		if err != nil {
			return false, err
		}
		files = discovered
	}

	var failed bool
	for _, name := range files {
		if _, err := locales.ParseTag(name); err != nil {
			c.log.Warn("locale file name is not a valid language tag", "file", name)
		}

		doc, err := locales.Load(c.locales, name)
		if err != nil {
			return false, err
		}
		keys := keyset.Extract(doc)

		missing := templateKeys.Diff(keys)
		extra := keys.Diff(templateKeys)
		if missing.Len() == 0 && extra.Len() == 0 {
			continue
		}

		failed = true
		fmt.Fprintln(c.out, "Error in", name)
		if missing.Len() > 0 {
			fmt.Fprintln(c.out, "Missing keys:", missing)
		}
		if extra.Len() > 0 {
			fmt.Fprintln(c.out, "Extra keys:", extra)
		}
		fmt.Fprintln(c.out)
	}
	return failed, nil
}
