// Package check validates that localization files stay consistent with
// their canonical template and with the translation keys referenced from
// markup sources.
//
// Two checks run against the template's flattened key set:
//
//   - Template consistency: every locale file must declare exactly the
//     template's keys. Missing and extra keys are reported per file.
//   - Usage consistency: every key referenced from markup (via a literal
//     t("...") or t('...') call) must exist in the template, and every
//     template key must be referenced somewhere. Keys resolved dynamically
//     at runtime cannot be seen by the static scan and are exempted
//     through the configured safelist.
//
// The checker runs one of two profiles. With a markup filesystem it
// discovers locale files next to the template and runs both checks; with a
// fixed locale-file list it checks only those files against the template
// and skips the usage scan.
//
// # Usage
//
//	checker, err := check.New(os.DirFS("i18n"),
//		check.WithMarkupFS(os.DirFS("templates")),
//	)
//	if err != nil {
//		// configuration problem
//	}
//	failed, err := checker.Run()
//
// Run reports consistency problems on the configured output writer and
// returns whether any were found. A file that cannot be read or parsed
// aborts the run with an error: a malformed input makes every comparison
// after it meaningless.
package check
