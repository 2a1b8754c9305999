package input

import (
	"strconv"

	"github.com/jakoblorz/wpblocks/internal/models"
)

var (
	sectionCommon = Section{Index: 1, Total: 3, Title: "Common variables for plugin and blocks"}
	sectionPlugin = Section{Index: 2, Total: 3, Title: "Plugin specific variables"}
	sectionBlocks = Section{Index: 3, Total: 3, Title: "Blocks specific variables"}
)

// Collector builds a PluginIdentity from a Source.
type Collector struct {
	// Seed supplies defaults that differ from the built-in ones, e.g. the
	// schema URL already recorded in plugin.config.js
	Seed models.PluginIdentity
}

// NewCollector creates a Collector with the built-in defaults.
func NewCollector() *Collector {
	return &Collector{Seed: models.PluginIdentity{
		TextDomain:    models.DefaultTextDomain,
		PluginVersion: models.DefaultPluginVersion,
		WPVersion:     models.DefaultWPVersion,
		PHPVersion:    models.DefaultPHPVersion,
		License:       models.DefaultLicense,
		LicenseURI:    models.DefaultLicenseURI,
		SchemaURL:     models.DefaultSchemaURL,
		APIVersion:    models.DefaultAPIVersion,
		Version:       models.DefaultBlockVersion,
	}}
}

// Collect asks src for every field in order. Defaults for later fields are
// derived from earlier answers.
func (c *Collector) Collect(src Source) (*models.PluginIdentity, error) {
	id := &models.PluginIdentity{}
	seed := c.Seed

	q := &questionnaire{src: src}

	q.ask(&id.TextDomain, Field{Key: models.FieldTextDomain, Section: sectionCommon,
		Message: "Plugin textdomain (also used as slug):", Default: seed.TextDomain,
		Required: true, Validate: models.ValidateTextDomain})
	q.ask(&id.PluginName, Field{Key: models.FieldPluginName, Section: sectionCommon,
		Message: "Plugin Name:", Default: models.SlugToTitle(id.TextDomain), Required: true})
	q.ask(&id.PHPNamespace, Field{Key: models.FieldPHPNamespace, Section: sectionCommon,
		Message: "PHP Namespace:", Default: models.SlugToPascalCase(id.TextDomain), Required: true})

	q.ask(&id.PluginDescription, Field{Key: models.FieldPluginDescription, Section: sectionPlugin,
		Message: "Plugin Description:", Default: seed.PluginDescription})
	q.ask(&id.PluginVersion, Field{Key: models.FieldPluginVersion, Section: sectionPlugin,
		Message: "Plugin Version:", Default: seed.PluginVersion})
	q.ask(&id.WPVersion, Field{Key: models.FieldWPVersion, Section: sectionPlugin,
		Message: "Minimum WordPress version required:", Default: seed.WPVersion})
	q.ask(&id.PHPVersion, Field{Key: models.FieldPHPVersion, Section: sectionPlugin,
		Message: "Minimum PHP version required:", Default: seed.PHPVersion})
	q.ask(&id.Author, Field{Key: models.FieldAuthor, Section: sectionPlugin,
		Message: "Author Name:", Default: seed.Author})
	q.ask(&id.AuthorURI, Field{Key: models.FieldAuthorURI, Section: sectionPlugin,
		Message: "Author URI:", Default: seed.AuthorURI})
	q.ask(&id.License, Field{Key: models.FieldLicense, Section: sectionPlugin,
		Message: "License:", Default: seed.License})
	q.ask(&id.LicenseURI, Field{Key: models.FieldLicenseURI, Section: sectionPlugin,
		Message: "License URI:", Default: seed.LicenseURI})

	q.ask(&id.SchemaURL, Field{Key: models.FieldSchemaURL, Section: sectionBlocks,
		Message: "JSON Schema for reference:", Default: seed.SchemaURL, Required: true})
	q.ask(&id.BlocksNamespace, Field{Key: models.FieldBlocksNamespace, Section: sectionBlocks,
		Message: "Blocks Namespace (for Gutenberg identification):", Default: id.TextDomain, Required: true})

	var apiVersion string
	q.ask(&apiVersion, Field{Key: models.FieldAPIVersion, Section: sectionBlocks,
		Message: "Blocks API Version:", Default: strconv.Itoa(seed.APIVersion),
		Required: true, Validate: validateAPIVersion})

	q.ask(&id.Version, Field{Key: models.FieldVersion, Section: sectionBlocks,
		Message: "Blocks version:", Default: seed.Version, Required: true})

	if q.err != nil {
		return nil, q.err
	}

	n, err := models.ParseAPIVersion(apiVersion)
	if err != nil {
		return nil, err
	}
	id.APIVersion = n

	if err := id.Validate(); err != nil {
		return nil, err
	}

	return id, nil
}

// questionnaire stops asking after the first error.
type questionnaire struct {
	src Source
	err error
}

func (q *questionnaire) ask(dst *string, field Field) {
	if q.err != nil {
		return
	}
	*dst, q.err = q.src.Collect(field)
}

func validateAPIVersion(s string) error {
	_, err := models.ParseAPIVersion(s)
	return err
}
