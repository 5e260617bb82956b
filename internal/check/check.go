// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for the configured classifier.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/backmassage/typecopy/internal/classify"
	"github.com/backmassage/typecopy/internal/config"
	"github.com/backmassage/typecopy/internal/extension"
)

// ErrFileNotFound is returned by CheckDeps when the file classifier's
// command is not on PATH.
var ErrFileNotFound = errors.New("file command not found on PATH")

// Sample heads fed to the built-in sniffer during --check.
var samples = []struct {
	name string
	head []byte
	want string
}{
	{"PDF", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n"), ".pdf"},
	{"PNG", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x10\x00\x00\x00\x10\x08\x06\x00\x00\x00"), ".png"},
	{"JPEG", []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00"), ".jpg"},
	{"text", []byte("plain text\n"), ".txt"},
}

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck prints the file command's version, the extension table, and a
// built-in sniffer self-test. It reports whether the configured classifier
// is usable.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	fileOK := checkFileCommand(ctx, cfg.FileCommand, log)
	sniffOK := checkSniffer(log)
	listTable(extension.Default(), log)

	if cfg.Classifier == config.ClassifierBuiltin {
		return sniffOK
	}
	return fileOK
}

// checkFileCommand verifies the file command is on PATH and logs its version.
func checkFileCommand(ctx context.Context, command string, log Logger) bool {
	if _, err := exec.LookPath(command); err != nil {
		log.Error("%s not found", command)
		return false
	}
	v, err := classify.NewFileCommand(command).Version(ctx)
	if err != nil {
		log.Warn("%s found but --version failed: %v", command, err)
		return true
	}
	log.Success("%s: %s", command, v)
	return true
}

// checkSniffer runs each sample through the built-in detector and the
// default table.
func checkSniffer(log Logger) bool {
	log.Info("Built-in classifier:")
	table := extension.Default()
	ok := true
	for _, s := range samples {
		desc := classify.DescribeBytes(s.head)
		got := table.Resolve(desc).String()
		if got != s.want {
			log.Error("  %-5s %q -> %s (want %s)", s.name, desc, got, s.want)
			ok = false
			continue
		}
		log.Success("  %-5s %q -> %s", s.name, desc, got)
	}
	return ok
}

func listTable(t *extension.Table, log Logger) {
	log.Info("Extension table (%d entries):", t.Len())
	for _, d := range t.Descriptors() {
		ext, _ := t.Lookup(d)
		log.Info("  %-6s .%s", d, ext)
	}
}

// CheckDeps is the pre-run validation: with the file classifier selected,
// its command must be on PATH. The built-in classifier has no external
// dependency.
func CheckDeps(cfg *config.Config) error {
	if cfg.Classifier != config.ClassifierFile {
		return nil
	}
	if _, err := exec.LookPath(cfg.FileCommand); err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, cfg.FileCommand)
	}
	return nil
}
