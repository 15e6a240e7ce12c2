// Package locales reads structured locale documents (JSON, YAML, TOML)
// from an fs.FS and discovers locale files colocated with a canonical
// template file.
//
// Discovery is non-recursive: locale files sit in the filesystem root next
// to the template, which is excluded (along with any other non-locale
// file) by a reserved name prefix.
package locales
