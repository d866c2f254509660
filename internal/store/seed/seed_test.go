package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		want    []Entry
		wantErr string
	}{
		{
			name: "yaml",
			file: "items.yaml",
			body: "- name: Widget\n  price: 100\n- name: Gadget\n  price: 2.5\n",
			want: []Entry{{Name: "Widget", Price: 100}, {Name: "Gadget", Price: 2.5}},
		},
		{
			name: "json",
			file: "items.json",
			body: `[{"name": "Widget", "price": 100}]`,
			want: []Entry{{Name: "Widget", Price: 100}},
		},
		{
			name: "empty yaml",
			file: "items.yml",
			body: "",
			want: nil,
		},
		{
			name:    "missing name",
			file:    "items.yaml",
			body:    "- price: 3\n",
			wantErr: "entry 1: name is required",
		},
		{
			name:    "zero price",
			file:    "items.yaml",
			body:    "- name: Widget\n- name: Free\n  price: 0\n",
			wantErr: "entry 1: price must be greater than 0",
		},
		{
			name:    "malformed json",
			file:    "items.json",
			body:    `{"name":`,
			wantErr: "failed to unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(write(t, tt.file, tt.body))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorContains(t, err, "failed to read from")
}
