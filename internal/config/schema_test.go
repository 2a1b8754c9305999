package config

import (
	"errors"
	"testing"

	"github.com/jakoblorz/wpblocks/internal/models"
	"github.com/stretchr/testify/require"
)

func TestValidateAnswers(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		field   string
	}{
		{
			name: "valid yaml",
			data: "textdomain: acme-tools\npluginName: Acme Tools\napiVersion: 3\n",
		},
		{
			name: "valid json",
			data: `{"textdomain": "acme-tools", "$schema": "https://schemas.wp.org/trunk/block.json", "apiVersion": "2"}`,
		},
		{
			name: "empty document",
			data: "",
		},
		{
			name:    "textdomain not kebab case",
			data:    "textdomain: Acme_Tools\n",
			wantErr: true,
			field:   "textdomain",
		},
		{
			name:    "unknown key",
			data:    "textdomain: acme-tools\ncolour: blue\n",
			wantErr: true,
			field:   "answers",
		},
		{
			name:    "api version zero",
			data:    "apiVersion: 0\n",
			wantErr: true,
			field:   "apiVersion",
		},
		{
			name:    "unquoted php version",
			data:    "phpVersion: 8.0\n",
			wantErr: true,
			field:   "phpVersion",
		},
		{
			name:    "unquoted wp version",
			data:    "wpVersion: 6.10\n",
			wantErr: true,
			field:   "wpVersion",
		},
		{
			name: "quoted versions",
			data: "phpVersion: \"8.0\"\nwpVersion: '6.10'\npluginVersion: \"1.0\"\nversion: 0.1.0\n",
		},
		{
			name:    "empty plugin name",
			data:    "pluginName: \"\"\n",
			wantErr: true,
			field:   "pluginName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswers([]byte(tt.data))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var ve *models.ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
			require.Equal(t, tt.field, ve.Field)
			require.NotEmpty(t, ve.Reason)
		})
	}
}

func TestValidateAnswers_Malformed(t *testing.T) {
	err := ValidateAnswers([]byte("textdomain: [unclosed\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing answers")
}
