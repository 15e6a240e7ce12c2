package check

// Config fixes the checker's behavior for one run. It replaces what the
// surrounding build scripts would otherwise hard-code: where the template
// lives, which files count as locales, and which keys escape the usage
// scan. Construct it once and treat it as immutable.
type Config struct {
	// TemplateFile is the canonical template's name inside the locales
	// filesystem.
	TemplateFile string

	// Extensions lists recognized locale file extensions, lowercase with
	// the leading dot (".json", ".yaml", ...).
	Extensions []string

	// ReservedPrefix marks non-locale files colocated with the locales;
	// the template itself conventionally carries it.
	ReservedPrefix string

	// Safelist holds keys referenced through mechanisms the static usage
	// scan cannot detect (computed or indirect keys). They are seeded into
	// the usage set so they never report as unused.
	Safelist []string

	// UsagePattern recognizes translation-function call sites in markup
	// sources. It must capture the key argument in group 1.
	UsagePattern string

	// LocaleFiles, when non-empty, selects the reduced profile: only the
	// listed files are checked against the template and discovery is
	// skipped. An empty list means discover locale files by extension and
	// prefix.
	LocaleFiles []string
}

// DefaultUsagePattern matches t("some.key") and t('some.key') where the key
// is one or more dot-separated runs of word characters. Dynamically
// constructed keys are invisible to it; legitimate ones belong in the
// safelist.
const DefaultUsagePattern = `\bt\(["'](\w+(?:\.\w+)*)["']`

// DefaultConfig returns the conventional configuration: template named
// "_template.json", underscore-prefixed files reserved, and the stock
// safelist for keys resolved at runtime.
func DefaultConfig() Config {
	return Config{
		TemplateFile:   "_template.json",
		Extensions:     []string{".json", ".yaml", ".yml", ".toml"},
		ReservedPrefix: "_",
		Safelist: []string{
			"_lang",
			"r.convertSelector.default",
			"r.convertSelector.metric",
			"r.convertSelector.imperial",
			"openInEditor.error",
			"openInEditor.success",
		},
		UsagePattern: DefaultUsagePattern,
	}
}
