package gitutil

import (
	"strings"
	"testing"
)

func TestValidateBranchName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid simple name",
			input:   "main",
			wantErr: false,
		},
		{
			name:    "valid with hyphens",
			input:   "feature-branch",
			wantErr: false,
		},
		{
			name:    "valid with slashes",
			input:   "feature/add-something",
			wantErr: false,
		},
		{
			name:    "valid mixed case",
			input:   "Release-2024",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "starts with slash",
			input:   "/feature",
			wantErr: true,
		},
		{
			name:    "ends with slash",
			input:   "feature/",
			wantErr: true,
		},
		{
			name:    "starts with dash",
			input:   "-f",
			wantErr: true,
		},
		{
			name:    "contains double dots",
			input:   "feature..branch",
			wantErr: true,
		},
		{
			name:    "contains double slashes",
			input:   "feature//branch",
			wantErr: true,
		},
		{
			name:    "ends with .lock",
			input:   "feature.lock",
			wantErr: true,
		},
		{
			name:    "contains reflog syntax",
			input:   "main@{1}",
			wantErr: true,
		},
		{
			name:    "contains space",
			input:   "my branch",
			wantErr: true,
		},
		{
			name:    "contains colon",
			input:   "a:b",
			wantErr: true,
		},
		{
			name:    "contains control character",
			input:   "feat\x01",
			wantErr: true,
		},
		{
			name:    "long nested name",
			input:   strings.Repeat("seg/", 70) + "end",
			wantErr: false,
		},
		{
			name:    "very long flat name",
			input:   strings.Repeat("a", 1024),
			wantErr: false,
		},
		{
			name:    "component starts with dot",
			input:   "feature/.hidden",
			wantErr: true,
		},
		{
			name:    "component ends with .lock",
			input:   "feature.lock/x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBranchName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBranchName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
