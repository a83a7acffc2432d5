package commands

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"run"}, "run"},
		{[]string{"run", "--dry-run"}, "run"},
		{[]string{"get", "--worksheet", "Archive", "--file", "archive.tsv"}, "get"},
		{[]string{"authorise"}, "authorise"},
		{[]string{"version"}, "version"},
		{[]string{"help", "run"}, "help"},
	}

	for _, test := range tests {
		cmd, err := Parse(test.args)
		if err != nil {
			t.Fatalf("Unexpected error parsing %v (%v)", test.args, err)
		}

		if cmd == nil || cmd.Name() != test.expected {
			t.Errorf("Incorrect command for %v - expected:%v, got:%v", test.args, test.expected, cmd)
		}
	}
}

func TestParseRunOptions(t *testing.T) {
	defer func() {
		RunCmd.dryrun = false
	}()

	if _, err := Parse([]string{"run", "--dry-run"}); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if !RunCmd.dryrun {
		t.Errorf("Expected --dry-run to be set")
	}
}

func TestParseGetOptions(t *testing.T) {
	file := GetCmd.file
	defer func() {
		GetCmd.worksheet = ""
		GetCmd.file = file
	}()

	if _, err := Parse([]string{"get", "--worksheet", "Archive", "--file", "archive.tsv"}); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if GetCmd.worksheet != "Archive" || GetCmd.file != "archive.tsv" {
		t.Errorf("Incorrect 'get' options - expected:Archive,archive.tsv, got:%v,%v", GetCmd.worksheet, GetCmd.file)
	}
}

func TestParseWithNoCommand(t *testing.T) {
	cmd, err := Parse([]string{})
	if err != nil || cmd != nil {
		t.Errorf("Expected no command and no error, got %v, %v", cmd, err)
	}
}

func TestParseWithInvalidCommand(t *testing.T) {
	if _, err := Parse([]string{"load-acl"}); err == nil {
		t.Errorf("Expected error for invalid command")
	}
}

func TestParseWithInvalidOption(t *testing.T) {
	if _, err := Parse([]string{"run", "--qwerty"}); err == nil {
		t.Errorf("Expected error for invalid option")
	}
}

func TestRunTimeout(t *testing.T) {
	defer func() {
		RunCmd.timeout = 0
	}()

	if RunCmd.timeout != 0 {
		t.Errorf("Incorrect default timeout - expected:%v, got:%v", time.Duration(0), RunCmd.timeout)
	}

	if _, err := Parse([]string{"run", "--timeout", "45s"}); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if RunCmd.timeout != 45*time.Second {
		t.Errorf("Incorrect timeout - expected:%v, got:%v", 45*time.Second, RunCmd.timeout)
	}
}
