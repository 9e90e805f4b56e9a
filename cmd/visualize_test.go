package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts.config, opts.logLevel = "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestWrongArgCountPrintsUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"a.csv", "b.csv"}} {
		out, err := execute(t, args...)
		if err != nil {
			t.Fatalf("args %v: err = %v, want nil", args, err)
		}
		if !strings.Contains(out, "visualize <csv_file>") {
			t.Fatalf("args %v: usage not printed, got %q", args, out)
		}
	}
}

func TestNoValidDataExitsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	header := "layerID,noteID,pinchType,loopNumber,playerTime,correctTime,classification\n"
	if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--log-level", "none", path)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if got := strings.TrimSpace(out); got != "No valid data found in CSV file." {
		t.Fatalf("output = %q", got)
	}
}

func TestUnknownLogLevel(t *testing.T) {
	if _, err := execute(t, "--log-level", "loud", "x.csv"); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestMissingFileFails(t *testing.T) {
	_, err := execute(t, "--log-level", "none", filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
