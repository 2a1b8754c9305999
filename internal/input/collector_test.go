package input

import (
	"errors"
	"testing"

	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/stretchr/testify/require"
)

// recordingSource answers from a map and remembers what it was asked.
type recordingSource struct {
	answers MapSource
	asked   []Field
}

func (r *recordingSource) Collect(field Field) (string, error) {
	r.asked = append(r.asked, field)
	return r.answers.Collect(field)
}

func TestCollector_DerivedDefaults(t *testing.T) {
	src := &recordingSource{answers: MapSource{models.FieldTextDomain: "acme-tools"}}

	id, err := NewCollector().Collect(src)
	require.NoError(t, err)

	require.Equal(t, "acme-tools", id.TextDomain)
	require.Equal(t, "Acme Tools", id.PluginName)
	require.Equal(t, "AcmeTools", id.PHPNamespace)
	require.Equal(t, "acme-tools", id.BlocksNamespace)
	require.Equal(t, models.DefaultPluginVersion, id.PluginVersion)
	require.Equal(t, models.DefaultWPVersion, id.WPVersion)
	require.Equal(t, models.DefaultPHPVersion, id.PHPVersion)
	require.Equal(t, models.DefaultLicense, id.License)
	require.Equal(t, models.DefaultLicenseURI, id.LicenseURI)
	require.Equal(t, models.DefaultSchemaURL, id.SchemaURL)
	require.Equal(t, 3, id.APIVersion)
	require.Equal(t, models.DefaultBlockVersion, id.Version)
	require.Empty(t, id.Author)
	require.Empty(t, id.AuthorURI)
	require.Empty(t, id.PluginDescription)

	keys := make([]string, 0, len(src.asked))
	for _, f := range src.asked {
		keys = append(keys, f.Key)
	}
	require.Equal(t, []string{
		"textdomain", "pluginName", "phpNamespace",
		"pluginDescription", "pluginVersion", "wpVersion", "phpVersion",
		"author", "authorUri", "license", "licenseUri",
		"$schema", "blocksNamespace", "apiVersion", "version",
	}, keys)

	require.Equal(t, "1/3 - Common variables for plugin and blocks", src.asked[0].Section.String())
	require.Equal(t, 3, src.asked[len(src.asked)-1].Section.Index)
}

func TestCollector_Overrides(t *testing.T) {
	src := MapSource{
		models.FieldTextDomain:   "acme-tools",
		models.FieldPluginName:   "ACME Toolbox",
		models.FieldPHPNamespace: "Acme\\Tools",
		models.FieldAPIVersion:   "2",
		models.FieldAuthorURI:    "https://acme.example",
	}

	id, err := NewCollector().Collect(src)
	require.NoError(t, err)
	require.Equal(t, "ACME Toolbox", id.PluginName)
	require.Equal(t, "Acme\\Tools", id.PHPNamespace)
	require.Equal(t, 2, id.APIVersion)
	require.Equal(t, "https://acme.example", id.AuthorURI)
}

func TestCollector_Seed(t *testing.T) {
	c := NewCollector()
	c.Seed.SchemaURL = "https://schemas.wp.org/wp/6.5/block.json"
	c.Seed.Author = "Acme Inc."

	id, err := c.Collect(MapSource{models.FieldTextDomain: "acme-tools"})
	require.NoError(t, err)
	require.Equal(t, "https://schemas.wp.org/wp/6.5/block.json", id.SchemaURL)
	require.Equal(t, "Acme Inc.", id.Author)
}

func TestCollector_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		answers MapSource
		field   string
	}{
		{"uppercase textdomain", MapSource{models.FieldTextDomain: "My-Block"}, models.FieldTextDomain},
		{"underscore textdomain", MapSource{models.FieldTextDomain: "my_block"}, models.FieldTextDomain},
		{"leading hyphen", MapSource{models.FieldTextDomain: "-my-block"}, models.FieldTextDomain},
		{"empty plugin name", MapSource{models.FieldTextDomain: "ok", models.FieldPluginName: "  "}, models.FieldPluginName},
		{"api version not a number", MapSource{models.FieldTextDomain: "ok", models.FieldAPIVersion: "three"}, models.FieldAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCollector().Collect(tt.answers)
			require.Error(t, err)

			var ve *models.ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCollector_StopsAtFirstError(t *testing.T) {
	src := &recordingSource{answers: MapSource{models.FieldTextDomain: "Bad"}}

	_, err := NewCollector().Collect(src)
	require.Error(t, err)
	require.Len(t, src.asked, 1)
}
