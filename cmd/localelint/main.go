// Command localelint checks that locale files declare exactly the keys of
// the canonical template, and that template keys match the translation
// calls found in markup sources. It reads fixed directories, prints
// diagnostics to stdout, and exits non-zero when anything is inconsistent.
package main

import (
	"os"

	"github.com/dmitrymomot/localelint/pkg/check"
	"github.com/dmitrymomot/localelint/pkg/logger"
)

// Behavior is fixed at invocation: no flags, no environment variables.
const (
	localesDir = "i18n"
	markupDir  = "templates"
)

func main() {
	log := logger.New().With("app", "localelint")

	checker, err := check.New(os.DirFS(localesDir),
		check.WithMarkupFS(os.DirFS(markupDir)),
		check.WithOutput(os.Stdout),
		check.WithLogger(log),
	)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	failed, err := checker.Run()
	if err != nil {
		log.Error("check aborted", "error", err)
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}
