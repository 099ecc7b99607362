package verify

import (
	"strings"
	"testing"

	"github.com/nbsapi/nbsapi-verify/internal/config"
	"github.com/nbsapi/nbsapi-verify/internal/testfile"
)

func authConfig() *config.Config {
	return &config.Config{Variables: config.Variables{
		Host:       "http://localhost:8000",
		UserID:     1,
		SolutionID: 1,
		Username:   "tester",
		Password:   "secret",
	}}
}

func publicOnlyConfig() *config.Config {
	return &config.Config{Variables: config.Variables{
		Host:       "http://localhost:8000",
		UserID:     1,
		SolutionID: 1,
	}}
}

func markedFiles(marks ...string) []testfile.File {
	files := make([]testfile.File, 0, len(marks))
	for _, m := range marks {
		files = append(files, testfile.File{Path: "test_" + m + ".tavern.yaml", Marks: []string{m}})
	}
	return files
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"all", "auth", "public"} {
		if _, err := ParseCategory(valid); err != nil {
			t.Errorf("Expected %q to parse, got error: %v", valid, err)
		}
	}
	if _, err := ParseCategory("integration"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestCheckRun(t *testing.T) {
	tests := []struct {
		name        string
		category    Category
		cfg         *config.Config
		files       []testfile.File
		wantErr     bool
		wantMessage string
	}{
		{
			name:     "all with credentials and both marks",
			category: CategoryAll,
			cfg:      authConfig(),
			files:    markedFiles("auth", "public"),
		},
		{
			name:        "auth without credentials",
			category:    CategoryAuth,
			cfg:         publicOnlyConfig(),
			files:       markedFiles("auth", "public"),
			wantErr:     true,
			wantMessage: "auth configuration is missing",
		},
		{
			name:        "all without credentials",
			category:    CategoryAll,
			cfg:         publicOnlyConfig(),
			files:       markedFiles("auth", "public"),
			wantErr:     true,
			wantMessage: "auth configuration is missing",
		},
		{
			name:     "public without credentials proceeds",
			category: CategoryPublic,
			cfg:      publicOnlyConfig(),
			files:    markedFiles("public"),
		},
		{
			name:        "auth with only public files",
			category:    CategoryAuth,
			cfg:         authConfig(),
			files:       markedFiles("public"),
			wantErr:     true,
			wantMessage: "no auth test files found",
		},
		{
			name:        "public with only auth files",
			category:    CategoryPublic,
			cfg:         authConfig(),
			files:       markedFiles("auth"),
			wantErr:     true,
			wantMessage: "no public test files found",
		},
		{
			name:        "all with only public files names the missing category",
			category:    CategoryAll,
			cfg:         authConfig(),
			files:       markedFiles("public"),
			wantErr:     true,
			wantMessage: "missing: auth",
		},
		{
			name:        "all with no files names both categories",
			category:    CategoryAll,
			cfg:         authConfig(),
			files:       nil,
			wantErr:     true,
			wantMessage: "missing: auth, public",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRun(tt.category, tt.cfg, tt.files)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected validation error")
				}
				if !strings.Contains(err.Error(), tt.wantMessage) {
					t.Errorf("Expected error containing %q, got: %v", tt.wantMessage, err)
				}
			} else if err != nil {
				t.Errorf("Expected run to be allowed, got error: %v", err)
			}
		})
	}
}

func TestCheckRunRemediationText(t *testing.T) {
	err := CheckRun(CategoryAuth, publicOnlyConfig(), markedFiles("auth"))
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "--username") || !strings.Contains(err.Error(), "--password") {
		t.Errorf("Expected remediation naming the flags, got: %v", err)
	}
}
