package locales

import (
	"path"
	"strings"

	"golang.org/x/text/language"
)

// ParseTag interprets a locale file name's stem (base name without
// extension) as a BCP 47 language tag, e.g. "en.json" -> en,
// "pt-BR.yaml" -> pt-BR. A stem that does not parse is advisory only;
// callers decide whether to warn.
func ParseTag(name string) (language.Tag, error) {
	base := path.Base(name)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return language.Parse(stem)
}
