package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnvParser_ParseEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "empty environment",
			env:  map[string]string{},
			want: &Config{},
		},
		{
			name: "git settings",
			env: map[string]string{
				EnvGitImplementation: "go-git",
				EnvGitBinary:         "/usr/local/bin/git",
				EnvRemote:            "upstream",
				EnvBaseBranches:      "develop, main,,",
			},
			want: &Config{Git: GitConfig{
				Implementation: "go-git",
				Binary:         "/usr/local/bin/git",
				Remote:         "upstream",
				BaseBranches:   []string{"develop", "main"},
			}},
		},
		{
			name: "browser override",
			env: map[string]string{
				EnvBrowser: "firefox --private-window %s",
			},
			want: &Config{Browser: BrowserConfig{Command: []string{"firefox", "--private-window", "%s"}}},
		},
		{
			name: "inherited BROWSER is ignored",
			env: map[string]string{
				"BROWSER": "w3m:lynx",
			},
			want: &Config{},
		},
		{
			name: "logging",
			env: map[string]string{
				EnvLogLevel:  "DEBUG",
				EnvLogFormat: "json",
				EnvVerbose:   "yes",
			},
			want: &Config{Logging: LoggingConfig{Level: "debug", Format: "json", Verbose: true}},
		},
		{
			name: "invalid boolean",
			env: map[string]string{
				EnvQuiet: "sometimes",
			},
			wantErr: true,
		},
		{
			name: "verbose and quiet",
			env: map[string]string{
				EnvVerbose: "true",
				EnvQuiet:   "1",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewEnvParserWithGetter(func(key string) string { return tt.env[key] })
			got, err := parser.ParseEnv()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEnv() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseEnv() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
