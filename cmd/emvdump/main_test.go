package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"codello.dev/emv/internal/logging"
)

const fci = "6F1A840E315041592E5359532E4444463031A5088801025F2D02656E"

func init() {
	logging.ConfigureTests()
}

func runCommand(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	status := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), status
}

func TestRun_Text(t *testing.T) {
	want := ` TAG:6F (FCI Template)
-- TAG:84 (DF Name) LENGTH:14
-- VALUE:315041592E5359532E4444463031
-- TAG:A5 (FCI Proprietary Template)
---- TAG:88 (SFI) LENGTH:1
---- VALUE:02
---- TAG:5F2D (Language Preference) LENGTH:2
---- VALUE:656E
`
	got, status := runCommand(t, "", fci)
	if status != 0 {
		t.Fatalf("run() = %d, want 0", status)
	}
	if got != want {
		t.Errorf("run() output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRun_Modes(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"DOL":     {[]string{"-mode", "dol", "9F0206 95 05"}, " TAG:9F02 (Amount, Authorised) LENGTH:6\n TAG:95 (TVR) LENGTH:5\n"},
		"Tags":    {[]string{"-mode=tags", "9F1A5F2A"}, " TAG:9F1A (Terminal Country Code)\n TAG:5F2A (Transaction Currency Code)\n"},
		"Unnamed": {[]string{"DF7F0100"}, " TAG:DF7F LENGTH:1\n VALUE:00\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, status := runCommand(t, "", tc.args...)
			if status != 0 {
				t.Fatalf("run(%q) = %d, want 0", tc.args, status)
			}
			if got != tc.want {
				t.Errorf("run(%q) = %q, want %q", tc.args, got, tc.want)
			}
		})
	}
}

func TestRun_Stdin(t *testing.T) {
	got, status := runCommand(t, "880102\n\nZZ\n9F1101 01\n", "-format", "json")
	if status != 1 {
		t.Errorf("run() = %d, want 1 for an invalid line", status)
	}
	dec := json.NewDecoder(strings.NewReader(got))
	var tags []string
	for dec.More() {
		var recs []record
		if err := dec.Decode(&recs); err != nil {
			t.Fatalf("decoding output %q: %v", got, err)
		}
		for _, r := range recs {
			tags = append(tags, r.Tag)
		}
	}
	if strings.Join(tags, ",") != "88,9F11" {
		t.Errorf("run() printed tags %v, want [88 9F11]", tags)
	}
}

func TestRun_YAML(t *testing.T) {
	got, status := runCommand(t, "", "-format", "yaml", fci)
	if status != 0 {
		t.Fatalf("run() = %d, want 0", status)
	}
	var recs []record
	if err := yaml.Unmarshal([]byte(got), &recs); err != nil {
		t.Fatalf("yaml.Unmarshal() returned an unexpected error: %v", err)
	}
	if len(recs) != 1 || len(recs[0].Children) != 2 || recs[0].Children[1].Children[1].Value != "656E" {
		t.Errorf("run() yaml output = %q", got)
	}
}

func TestRun_MaxDepth(t *testing.T) {
	if _, status := runCommand(t, "", "-max-depth", "1", fci); status != 1 {
		t.Errorf("run(-max-depth 1) = %d, want 1", status)
	}
	path := writeConfig(t, "max_depth = 1\n")
	if _, status := runCommand(t, "", "-config", path, "-max-depth", "0", fci); status != 0 {
		t.Errorf("run() with flag overriding config = %d, want 0", status)
	}
}

func TestRun_Usage(t *testing.T) {
	badLevel := writeConfig(t, "log_level = \"chatty\"\n")
	tests := map[string][]string{
		"UnknownFlag":   {"-colour"},
		"BadFormat":     {"-format", "xml", fci},
		"MissingConfig": {"-config", "/nonexistent/emvdump.toml", fci},
		"BadLogLevel":   {"-config", badLevel, fci},
		"MissingDict":   {"-dictionary", "/nonexistent/tags.txt", fci},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, status := runCommand(t, "", args...); status != 2 {
				t.Errorf("run(%q) = %d, want 2", args, status)
			}
		})
	}
}

func TestRun_LogLevel(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	var logs bytes.Buffer
	log.Logger = logging.New(&logs, logging.DefaultConfig(logging.ProfileRuntime))
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	path := writeConfig(t, "log_level = \"debug\"\n")
	if _, status := runCommand(t, "", "-config", path, fci); status != 0 {
		t.Fatalf("run() = %d, want 0", status)
	}
	if !strings.Contains(logs.String(), "emvdump: starting") {
		t.Errorf("log_level = debug did not enable debug output: %q", logs.String())
	}
}
