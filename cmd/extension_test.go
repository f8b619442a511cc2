package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension scripts need a unix shell")
	}
	tempDir := t.TempDir()
	out := filepath.Join(tempDir, "out.txt")

	script := "#!/bin/sh\n" +
		"echo \"$" + EnvConfigFile + "|$" + EnvItemsFile + "|$" + EnvVerbose + "|$*\" > " + out + "\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "cbo-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write cbo-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension() did not find cbo-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension() exit code = %d, want 3", code)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	want := *configFile + "|" + *itemsFile + "|false|a b"
	if strings.TrimSpace(string(got)) != want {
		t.Errorf("extension saw %q, want %q", strings.TrimSpace(string(got)), want)
	}

	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}

func TestIsRegistered(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("cbo", flag.ContinueOnError), "cbo")
	Register(c)
	for _, name := range []string{"optimize", "add", "rm", "list", "rates", "topic", "help"} {
		if !IsRegistered(c, name) {
			t.Errorf("IsRegistered(%q) = false", name)
		}
	}
	if IsRegistered(c, "hello") {
		t.Error("IsRegistered(hello) = true")
	}
}

func TestCompletionCoversCommands(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("cbo", flag.ContinueOnError), "cbo")
	Register(c)
	completion := Completion()
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if _, ok := completion.Sub[cmd.Name()]; !ok {
			t.Errorf("command %q has no completion", cmd.Name())
		}
	})
}
