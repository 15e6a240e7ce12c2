package locales_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localelint/pkg/locales"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()
		doc, err := locales.Decode("en.json", []byte(`{"nav": {"home": "Home"}, "title": "T"}`))
		require.NoError(t, err)
		require.Equal(t, "T", doc["title"])
		require.Equal(t, map[string]any{"home": "Home"}, doc["nav"])
	})

	t.Run("YAML", func(t *testing.T) {
		t.Parallel()
		doc, err := locales.Decode("fr.yaml", []byte("title: T\nnav:\n  home: Accueil\n"))
		require.NoError(t, err)
		require.Equal(t, "T", doc["title"])
		require.Equal(t, map[string]any{"home": "Accueil"}, doc["nav"])
	})

	t.Run("YML extension", func(t *testing.T) {
		t.Parallel()
		doc, err := locales.Decode("fr.yml", []byte("title: T\n"))
		require.NoError(t, err)
		require.Equal(t, "T", doc["title"])
	})

	t.Run("TOML", func(t *testing.T) {
		t.Parallel()
		doc, err := locales.Decode("de.toml", []byte("title = \"T\"\n\n[nav]\nhome = \"Start\"\n"))
		require.NoError(t, err)
		require.Equal(t, "T", doc["title"])
		require.Equal(t, map[string]any{"home": "Start"}, doc["nav"])
	})

	t.Run("extension is case-insensitive", func(t *testing.T) {
		t.Parallel()
		doc, err := locales.Decode("en.JSON", []byte(`{"title": "T"}`))
		require.NoError(t, err)
		require.Equal(t, "T", doc["title"])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := locales.Decode("en.txt", []byte("title"))
		require.ErrorIs(t, err, locales.ErrUnsupportedFormat)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()
		_, err := locales.Decode("en.json", []byte(`{"title":`))
		require.ErrorIs(t, err, locales.ErrInvalidFile)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en.json":  &fstest.MapFile{Data: []byte(`{"title": "T"}`)},
		"bad.json": &fstest.MapFile{Data: []byte(`{{`)},
	}

	t.Run("reads and decodes", func(t *testing.T) {
		t.Parallel()
		doc, err := locales.Load(fsys, "en.json")
		require.NoError(t, err)
		require.Equal(t, "T", doc["title"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := locales.Load(fsys, "missing.json")
		require.Error(t, err)
	})

	t.Run("parse failure wraps ErrInvalidFile", func(t *testing.T) {
		t.Parallel()
		_, err := locales.Load(fsys, "bad.json")
		require.ErrorIs(t, err, locales.ErrInvalidFile)
	})
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"_template.json": &fstest.MapFile{Data: []byte(`{}`)},
		"_notes.md":      &fstest.MapFile{Data: []byte(``)},
		"en.json":        &fstest.MapFile{Data: []byte(`{}`)},
		"es.json":        &fstest.MapFile{Data: []byte(`{}`)},
		"de.toml":        &fstest.MapFile{Data: []byte(``)},
		"fr.yaml":        &fstest.MapFile{Data: []byte(``)},
		"README":         &fstest.MapFile{Data: []byte(``)},
		"sub/pt.json":    &fstest.MapFile{Data: []byte(`{}`)},
	}

	t.Run("filters by extension and reserved prefix", func(t *testing.T) {
		t.Parallel()
		files, err := locales.Discover(fsys, []string{".json", ".yaml", ".toml"}, "_")
		require.NoError(t, err)
		require.Equal(t, []string{"de.toml", "en.json", "es.json", "fr.yaml"}, files)
	})

	t.Run("does not recurse into subdirectories", func(t *testing.T) {
		t.Parallel()
		files, err := locales.Discover(fsys, []string{".json"}, "_")
		require.NoError(t, err)
		require.NotContains(t, files, "sub/pt.json")
	})

	t.Run("empty prefix keeps template-like names", func(t *testing.T) {
		t.Parallel()
		files, err := locales.Discover(fsys, []string{".json"}, "")
		require.NoError(t, err)
		require.Contains(t, files, "_template.json")
	})
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	t.Run("plain language stems", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"en.json", "es.yaml", "de.toml"} {
			_, err := locales.ParseTag(name)
			require.NoError(t, err, name)
		}
	})

	t.Run("region subtag", func(t *testing.T) {
		t.Parallel()
		tag, err := locales.ParseTag("pt-BR.json")
		require.NoError(t, err)
		require.Equal(t, "pt-BR", tag.String())
	})

	t.Run("reserved names do not parse", func(t *testing.T) {
		t.Parallel()
		_, err := locales.ParseTag("_template.json")
		require.Error(t, err)
	})
}
