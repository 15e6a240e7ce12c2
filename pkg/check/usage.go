package check

import (
	"fmt"
	"io/fs"

	"github.com/dmitrymomot/localelint/pkg/keyset"
)

// checkUsage walks the markup tree, collects every literal translation call
// the usage pattern recognizes, and compares the collected keys against the
// template. The scan visits every file regardless of extension. Keys built
// dynamically at runtime are invisible to it; the safelist covers those.
func (c *Checker) checkUsage(templateKeys keyset.Set) (bool, error) {
	uses := keyset.New(c.cfg.Safelist...)

	err := fs.WalkDir(c.markup, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(c.markup, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		for _, match := range c.usage.FindAllSubmatch(data, -1) {
			uses.Add(string(match[1]))
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("scanning markup sources: %w", err)
	}

	var failed bool
	if unused := templateKeys.Diff(uses); unused.Len() > 0 {
		failed = true
		fmt.Fprintln(c.out, "Unused keys:", unused)
	}
	if notFound := uses.Diff(templateKeys); notFound.Len() > 0 {
		failed = true
		fmt.Fprintln(c.out, "Not found keys:", notFound)
	}
	return failed, nil
}
