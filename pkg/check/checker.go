package check

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"regexp"

	"github.com/dmitrymomot/localelint/pkg/keyset"
	"github.com/dmitrymomot/localelint/pkg/locales"
)

// Checker verifies a set of locale files against their canonical template
// and, optionally, against the translation keys actually referenced from a
// markup source tree. It is immutable after construction.
type Checker struct {
	cfg     Config
	locales fs.FS
	markup  fs.FS
	usage   *regexp.Regexp
	out     io.Writer
	log     *slog.Logger
}

// Option configures the Checker during construction.
type Option func(*Checker)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(c *Checker) {
		c.cfg = cfg
	}
}

// WithMarkupFS enables the usage scan over the given source tree. Without
// it the checker runs the reduced profile: template consistency only.
func WithMarkupFS(fsys fs.FS) Option {
	return func(c *Checker) {
		c.markup = fsys
	}
}

// WithOutput redirects diagnostic output, which defaults to stdout.
// Diagnostics are the tool's product; logs go elsewhere.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) {
		c.out = w
	}
}

// WithLogger sets the logger used for advisory messages.
func WithLogger(log *slog.Logger) Option {
	return func(c *Checker) {
		c.log = log
	}
}

// New creates a Checker reading locale files from localesFS.
func New(localesFS fs.FS, opts ...Option) (*Checker, error) {
	if localesFS == nil {
		return nil, ErrNilFS
	}

	c := &Checker{
		cfg:     DefaultConfig(),
		locales: localesFS,
		out:     os.Stdout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.TemplateFile == "" {
		return nil, ErrEmptyTemplate
	}

	usage, err := regexp.Compile(c.cfg.UsagePattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPattern, err)
	}
	if usage.NumSubexp() < 1 {
		return nil, ErrMissingCapture
	}
	c.usage = usage

	return c, nil
}

// Run loads the template, checks every locale file against it, then scans
// markup sources for key usage when a markup filesystem is configured.
// The returned bool reports whether any consistency problem was found;
// a non-nil error means a file could not be read or parsed, which aborts
// the run since every comparison after it would be meaningless.
func (c *Checker) Run() (failed bool, err error) {
	doc, err := locales.Load(c.locales, c.cfg.TemplateFile)
	if err != nil {
		return false, fmt.Errorf("loading template: %w", err)
	}
	templateKeys := keyset.Extract(doc)

	failed, err = c.checkTemplate(templateKeys)
	if err != nil {
		return false, err
	}

	if c.markup != nil {
		usageFailed, err := c.checkUsage(templateKeys)
		if err != nil {
			return false, err
		}
		failed = failed || usageFailed
	}

	return failed, nil
}
