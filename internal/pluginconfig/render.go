package pluginconfig

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/wpblocks/internal/models"
)

// blockTemplate lists the seven propagated fields in their fixed order.
// The output is only roughly laid out; Format makes it canonical.
const blockTemplate = `
{{- define "str" }}{{ . | replace "\\" "\\\\" | replace "'" "\\'" | squote }}{{ end -}}
module.exports = {
  pluginName: {{ template "str" .PluginName }},
  phpNamespace: {{ template "str" .PHPNamespace }},
  textdomain: {{ template "str" .TextDomain }},
  $schema: {{ template "str" .SchemaURL }},
  apiVersion: {{ .APIVersion | int }},
  version: {{ template "str" .Version }},
  blocksNamespace: {{ template "str" .BlocksNamespace }},
};`

var configTemplate = template.Must(
	template.New("plugin.config.js").Funcs(sprig.TxtFuncMap()).Parse(blockTemplate),
)

// RenderBlock serializes the identity fields stored in plugin.config.js and
// formats the result with opts.
func RenderBlock(id *models.PluginIdentity, opts FormatOptions) (string, error) {
	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, id); err != nil {
		return "", fmt.Errorf("failed to render plugin config: %w", err)
	}

	formatted, err := Format(buf.String(), opts)
	if err != nil {
		return "", fmt.Errorf("failed to format plugin config: %w", err)
	}
	return formatted, nil
}
