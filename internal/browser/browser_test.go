package browser

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recordingStarter struct {
	calls [][]string
	err   error
}

func (r *recordingStarter) Start(ctx context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestLauncher_Open(t *testing.T) {
	const url = "https://github.com/org/repo/blob/main/a.go"

	tests := []struct {
		name string
		goos string
		want []string
	}{
		{
			name: "macOS",
			goos: "darwin",
			want: []string{"open", url},
		},
		{
			name: "linux",
			goos: "linux",
			want: []string{"xdg-open", url},
		},
		{
			name: "freebsd",
			goos: "freebsd",
			want: []string{"xdg-open", url},
		},
		{
			name: "windows",
			goos: "windows",
			want: []string{"cmd", "/c", "start", "", url},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			starter := &recordingStarter{}
			l := New(tt.goos, WithStarter(starter))

			if err := l.Open(context.Background(), url); err != nil {
				t.Fatalf("Open() unexpected error: %v", err)
			}
			if diff := cmp.Diff([][]string{tt.want}, starter.calls); diff != "" {
				t.Errorf("started commands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLauncher_UnsupportedOS(t *testing.T) {
	starter := &recordingStarter{}
	l := New("plan9", WithStarter(starter))

	err := l.Open(context.Background(), "https://example.com")
	if !errors.Is(err, ErrUnsupportedOS) {
		t.Fatalf("Open() error = %v, want ErrUnsupportedOS", err)
	}
	if len(starter.calls) != 0 {
		t.Errorf("no command should start on unsupported OS, got %v", starter.calls)
	}
}

func TestLauncher_CommandTableAdditions(t *testing.T) {
	starter := &recordingStarter{}
	l := New("plan9",
		WithStarter(starter),
		WithCommands(map[string]Command{
			"plan9": {"plumb"},
			"linux": nil,
		}),
	)

	if err := l.Open(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	if diff := cmp.Diff([][]string{{"plumb", "https://example.com"}}, starter.calls); diff != "" {
		t.Errorf("started commands mismatch (-want +got):\n%s", diff)
	}

	linux := New("linux", WithCommands(map[string]Command{"linux": nil}))
	if _, err := linux.CommandFor("https://example.com"); !errors.Is(err, ErrUnsupportedOS) {
		t.Errorf("empty entry should remove linux, got %v", err)
	}
}

func TestLauncher_Override(t *testing.T) {
	starter := &recordingStarter{}
	l := New("linux", WithStarter(starter), WithCommand(Command{"firefox", "--new-tab"}))

	if err := l.Open(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	want := [][]string{{"firefox", "--new-tab", "https://example.com"}}
	if diff := cmp.Diff(want, starter.calls); diff != "" {
		t.Errorf("started commands mismatch (-want +got):\n%s", diff)
	}
}

func TestLauncher_URLPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want []string
	}{
		{
			name: "placeholder argument",
			cmd:  Command{"firefox", "%s", "--new-tab"},
			want: []string{"firefox", "https://example.com", "--new-tab"},
		},
		{
			name: "placeholder inside argument",
			cmd:  Command{"open-url", "--target=%s"},
			want: []string{"open-url", "--target=https://example.com"},
		},
		{
			name: "no placeholder appends",
			cmd:  Command{"firefox"},
			want: []string{"firefox", "https://example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New("linux", WithCommand(tt.cmd)).CommandFor("https://example.com")
			if err != nil {
				t.Fatalf("CommandFor() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CommandFor() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLauncher_StartFailure(t *testing.T) {
	starter := &recordingStarter{err: errors.New("executable file not found in $PATH")}
	l := New("linux", WithStarter(starter))

	err := l.Open(context.Background(), "https://example.com")
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("Open() error = %v, want *LaunchError", err)
	}
	if launchErr.OS != "linux" || launchErr.Command[0] != "xdg-open" {
		t.Errorf("unexpected launch error detail: %+v", launchErr)
	}
}

func TestNew_DefaultsToRuntimeOS(t *testing.T) {
	l := New("")
	if l.goos != runtime.GOOS {
		t.Errorf("goos = %q, want %q", l.goos, runtime.GOOS)
	}
}

func TestNew_DoesNotShareDefaultTable(t *testing.T) {
	New("linux", WithCommands(map[string]Command{"linux": {"custom"}}))
	if DefaultCommands["linux"][0] != "xdg-open" {
		t.Errorf("DefaultCommands mutated: %v", DefaultCommands["linux"])
	}
}
