package argv

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"testing"
)

type wantOption struct {
	key   string
	value Value
}

func assertOptions(t *testing.T, res *Result, want []wantOption) {
	t.Helper()

	keys := make([]string, len(want))
	for i, w := range want {
		keys[i] = w.key
	}
	if got := res.Options.Keys(); !slices.Equal(got, keys) {
		t.Fatalf("Expected option keys %q, got %q", keys, got)
	}

	for _, w := range want {
		got, ok := res.Options.Get(w.key)
		if !ok {
			t.Errorf("Expected option %q to exist", w.key)
			continue
		}
		if !got.Equal(w.value) {
			t.Errorf("Option %q = %s (%s), want %s (%s)", w.key, got, got.Kind(), w.value, w.value.Kind())
		}
	}
}

// TestParseClusteredWithCommand covers app stripping, command detection and
// cluster expansion with a trailing integer value
func TestParseClusteredWithCommand(t *testing.T) {
	res, err := Parse([]string{"app.py", "ls", "-lar", "42"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !res.HasApp || res.App != "app" {
		t.Errorf("Expected app='app', got %q (present=%v)", res.App, res.HasApp)
	}
	if !res.HasCommand || res.Command != "ls" {
		t.Errorf("Expected command='ls', got %q (present=%v)", res.Command, res.HasCommand)
	}

	assertOptions(t, res, []wantOption{
		{"-l", Null()},
		{"-a", Null()},
		{"-r", IntValue(42)},
	})
}

func TestParseLongOptionWithMessage(t *testing.T) {
	res, err := Parse([]string{"app.py", "--print", "My message", "-i"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if res.HasCommand {
		t.Errorf("Expected no command, got %q", res.Command)
	}

	assertOptions(t, res, []wantOption{
		{"--print", StringValue("My message")},
		{"-i", Null()},
	})
}

// TestParseRepeatedOptionNewestFirst checks the [new, old] promotion order
func TestParseRepeatedOptionNewestFirst(t *testing.T) {
	res, err := Parse([]string{"app.py", "-v", "/var/www", "-i", "-v", "/var/bin/bash"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assertOptions(t, res, []wantOption{
		{"-v", ListValue(StringValue("/var/bin/bash"), StringValue("/var/www"))},
		{"-i", Null()},
	})
}

func TestParseRepeatedOptionAppendsAfterPromotion(t *testing.T) {
	res, err := Parse([]string{
		"app.py", "hello", "--name", "myName",
		"-v", "2.4", "-v", "50", "-v", "C:/Users/UserName/App", "-v", "C:/Users/UserName/App/Directory",
		"-rf", "-t", "-o", "test",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if res.Command != "hello" {
		t.Errorf("Expected command='hello', got %q", res.Command)
	}

	assertOptions(t, res, []wantOption{
		{"--name", StringValue("myName")},
		{"-v", ListValue(
			IntValue(50),
			FloatValue(2.4),
			StringValue("C:/Users/UserName/App"),
			StringValue("C:/Users/UserName/App/Directory"),
		)},
		{"-r", Null()},
		{"-f", Null()},
		{"-t", Null()},
		{"-o", StringValue("test")},
	})
}

func TestParseFlagThenValueKeepsNullInList(t *testing.T) {
	res, err := Parse([]string{"app.py", "-v", "-v", "x"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	assertOptions(t, res, []wantOption{
		{"-v", ListValue(StringValue("x"), Null())},
	})
}

func TestParseTrailingFlagOverwritesValue(t *testing.T) {
	res, err := Parse([]string{"app.py", "-v", "x", "-i", "-v"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// -v keeps its first-appearance slot
	assertOptions(t, res, []wantOption{
		{"-v", Null()},
		{"-i", Null()},
	})
}

func TestParseClusterWithValue(t *testing.T) {
	res, err := Parse([]string{"app.py", "commit", "-am", "commit message"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if res.Command != "commit" {
		t.Errorf("Expected command='commit', got %q", res.Command)
	}
	assertOptions(t, res, []wantOption{
		{"-a", Null()},
		{"-m", StringValue("commit message")},
	})
}

func TestParseValueTypes(t *testing.T) {
	res, err := Parse([]string{"app.py", "--int", "8080", "--float", "0.5", "--pi", "3.14", "--neg", "-5"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// "-5" is itself an option, so --neg is a flag
	assertOptions(t, res, []wantOption{
		{"--int", IntValue(8080)},
		{"--float", FloatValue(0.5)},
		{"--pi", StringValue("3.14")},
		{"--neg", Null()},
		{"-5", Null()},
	})
}

func TestParseAppDetection(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		app         string
		hasApp      bool
		command     string
		hasCommand  bool
		optionCount int
	}{
		{"python script", []string{"app.py", "-x"}, "app", true, "", false, 1},
		{"windows exe", []string{`C:\bin\tool.exe`, "run"}, `C:\bin\tool`, true, "run", true, 0},
		{"relative path", []string{"./run.sh", "go"}, "./run", true, "go", true, 0},
		{"only first suffix", []string{"archive.tar.gz"}, "archive.gz", true, "", false, 0},
		{"bare extension", []string{".py", "-q"}, "", true, "", false, 1},
		{"no suffix becomes command", []string{"tool", "-x"}, "", false, "tool", true, 1},
		{"option first without suffix", []string{"-x", "1"}, "", false, "", false, 1},
		{"app only", []string{"app.py"}, "app", true, "", false, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := Parse(test.args)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if res.App != test.app || res.HasApp != test.hasApp {
				t.Errorf("app = %q (%v), want %q (%v)", res.App, res.HasApp, test.app, test.hasApp)
			}
			if res.Command != test.command || res.HasCommand != test.hasCommand {
				t.Errorf("command = %q (%v), want %q (%v)", res.Command, res.HasCommand, test.command, test.hasCommand)
			}
			if res.Options.Len() != test.optionCount {
				t.Errorf("options = %d, want %d", res.Options.Len(), test.optionCount)
			}
		})
	}
}

func TestParseUnassociatedArgument(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		token    string
		position int
	}{
		{"orphan after value", []string{"app.py", "-l", "orphan", "extra"}, "extra", 3},
		{"two values", []string{"app.py", "hello", "--name", "myName", "-v", "test2", "none", "-rf"}, "none", 6},
		{"after cluster", []string{"app.py", "-ab", "x", "y"}, "y", 3},
		{"command then positional", []string{"app.py", "ls", "x"}, "x", 2},
		{"no app suffix", []string{"tool", "a", "-b"}, "a", 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := Parse(test.args)
			if err == nil {
				t.Fatalf("Expected error, got result %+v", res)
			}
			if res != nil {
				t.Errorf("Expected no partial result, got %+v", res)
			}
			if !errors.Is(err, ErrUnassociatedArgument) {
				t.Errorf("Expected ErrUnassociatedArgument, got %v", err)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if parseErr.Token != test.token {
				t.Errorf("Token = %q, want %q", parseErr.Token, test.token)
			}
			if parseErr.Position != test.position {
				t.Errorf("Position = %d, want %d", parseErr.Position, test.position)
			}
			if test.args[parseErr.Position] != test.token {
				t.Errorf("args[%d] = %q, want %q", parseErr.Position, test.args[parseErr.Position], test.token)
			}
		})
	}
}

// TestParseLastTokenExempt shows that a lone trailing positional is accepted
func TestParseLastTokenExempt(t *testing.T) {
	res, err := Parse([]string{"app.py", "ls"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Command != "ls" || res.Options.Len() != 0 {
		t.Errorf("Expected command only, got %+v", res)
	}
}

func TestParseEmptyVector(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrEmptyVector) {
		t.Fatalf("Expected ErrEmptyVector, got %v", err)
	}
	if errors.Is(err, ErrUnassociatedArgument) {
		t.Error("Empty vector error must not match ErrUnassociatedArgument")
	}
}

func TestParseDoesNotMutateInput(t *testing.T) {
	args := []string{"app.py", "ls", "-lar", "42"}
	orig := slices.Clone(args)

	if _, err := Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !slices.Equal(args, orig) {
		t.Errorf("Parse mutated input: %q -> %q", orig, args)
	}
}

func TestParseResultsAreIndependent(t *testing.T) {
	first := MustParse([]string{"app.py", "-v", "a", "-v", "b"})
	second := MustParse([]string{"app.py", "-v", "c"})

	v, _ := first.Options.Get("-v")
	if !v.Equal(ListValue(StringValue("b"), StringValue("a"))) {
		t.Errorf("first result changed after second parse: %s", v)
	}
	v, _ = second.Options.Get("-v")
	if !v.Equal(StringValue("c")) {
		t.Errorf("second result = %s, want c", v)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustParse to panic")
		}
	}()
	MustParse([]string{"app.py", "a", "b", "c"})
}

func TestParseConcurrent(t *testing.T) {
	inputs := [][]string{
		{"app.py", "ls", "-lar", "42"},
		{"app.py", "--print", "My message", "-i"},
		{"app.py", "-v", "/var/www", "-i", "-v", "/var/bin/bash"},
	}

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				in := inputs[(w+i)%len(inputs)]
				res, err := Parse(in)
				if err != nil {
					t.Errorf("Parse(%q) failed: %v", in, err)
					return
				}
				if res.Options.Len() == 0 {
					t.Errorf("Parse(%q) returned no options", in)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestExitCode(t *testing.T) {
	_, parseErr := Parse([]string{"app.py", "-l", "orphan", "extra"})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"parse error", parseErr, ExitMisusage},
		{"empty vector", NewParseError(ErrorTypeEmptyVector, "empty"), ExitMisusage},
		{"exit error", &ExitError{Code: 7, Err: errors.New("boom")}, 7},
		{"wrapped exit error", fmt.Errorf("run: %w", &ExitError{Code: 3}), 3},
		{"other", errors.New("boom"), ExitGeneral},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ExitCode(test.err); got != test.want {
				t.Errorf("ExitCode() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestParseOS(t *testing.T) {
	saved := os.Args
	t.Cleanup(func() { os.Args = saved })

	os.Args = []string{"tool.go", "run", "-n", "3"}
	res, err := ParseOS()
	if err != nil {
		t.Fatalf("ParseOS() failed: %v", err)
	}
	if res.App != "tool" || res.Command != "run" {
		t.Errorf("ParseOS() app=%q command=%q", res.App, res.Command)
	}
	if v, _ := res.Options.Get("-n"); !v.Equal(IntValue(3)) {
		t.Errorf("-n = %s, want 3", v)
	}
}
