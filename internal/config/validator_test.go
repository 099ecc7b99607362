package config

import (
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "minimal valid config",
			doc: `variables:
  host: http://localhost:8000
  user_id: 1
  solution_id: 1
`,
			wantErr: false,
		},
		{
			name: "valid config with credentials",
			doc: `variables:
  host: http://localhost:8000
  user_id: 5
  solution_id: 2
  username: tester
  password: secret
`,
			wantErr: false,
		},
		{
			name:    "missing variables mapping",
			doc:     "host: http://localhost:8000\n",
			wantErr: true,
		},
		{
			name: "missing host",
			doc: `variables:
  user_id: 1
  solution_id: 1
`,
			wantErr: true,
		},
		{
			name: "string user_id rejected",
			doc: `variables:
  host: http://localhost:8000
  user_id: "1"
  solution_id: 1
`,
			wantErr: true,
		},
		{
			name: "empty host rejected",
			doc: `variables:
  host: ""
  user_id: 1
  solution_id: 1
`,
			wantErr: true,
		},
		{
			name:    "malformed YAML",
			doc:     "variables: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument([]byte(tt.doc))
			if tt.wantErr && err == nil {
				t.Errorf("Expected validation error for:\n%s", tt.doc)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected valid document, got error: %v", err)
			}
		})
	}
}
