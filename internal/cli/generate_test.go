package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urlsup-dev/urlsup-testgen/internal/fixtures"
	"github.com/urlsup-dev/urlsup-testgen/internal/system"
	"github.com/urlsup-dev/urlsup-testgen/internal/ui"
)

func newTestContext(t *testing.T) (*GenerateContext, *bytes.Buffer, string) {
	t.Helper()
	tmpDir := t.TempDir()
	var out bytes.Buffer
	ctx := &GenerateContext{
		FS:      system.NewFileSystem(),
		UI:      ui.NewWithWriter(&out),
		WorkDir: tmpDir,
	}
	return ctx, &out, tmpDir
}

// snapshot reads every file under dir into a map keyed by relative path
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[rel] = string(content)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", dir, err)
	}
	return files
}

func TestRunAllFreshDirectory(t *testing.T) {
	ctx, out, tmpDir := newTestContext(t)

	if err := RunAll(ctx); err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}

	files := snapshot(t, tmpDir)

	wantPaths := []string{
		fixtures.GitignoreFile,
		filepath.Join(fixtures.RootDir, "broken-urls.md"),
		filepath.Join(fixtures.RootDir, fixtures.DirOne, "working-urls.md"),
		filepath.Join(fixtures.RootDir, fixtures.DirOne, fixtures.DirTwo, "mixed-urls.md"),
	}
	if len(files) != len(wantPaths) {
		t.Errorf("file count = %d, want %d (%v)", len(files), len(wantPaths), files)
	}
	for _, path := range wantPaths {
		if _, ok := files[path]; !ok {
			t.Errorf("missing expected file %s", path)
		}
	}

	if !strings.Contains(files[fixtures.GitignoreFile], fixtures.GitignoreEntry) {
		t.Errorf(".gitignore does not contain %s:\n%s", fixtures.GitignoreEntry, files[fixtures.GitignoreFile])
	}

	for _, doc := range fixtures.Documents() {
		if files[doc.Path()] != doc.Content {
			t.Errorf("%s content does not match its fixed specification", doc.Path())
		}
	}

	// Usage hints reference the urlsup invocations against the generated tree
	output := out.String()
	if !strings.Contains(output, "urlsup test-links-dir/ --recursive") {
		t.Errorf("output is missing the recursive usage hint:\n%s", output)
	}
	if !strings.Contains(output, "urlsup test-links-dir/dir-one/dir-two/") {
		t.Errorf("output is missing the nested-directory usage hint:\n%s", output)
	}
}

func TestRunAllPreservesUnrelatedGitignoreEntries(t *testing.T) {
	ctx, _, tmpDir := newTestContext(t)

	seed := "node_modules/\ndist/\n"
	gitignorePath := filepath.Join(tmpDir, fixtures.GitignoreFile)
	if err := os.WriteFile(gitignorePath, []byte(seed), 0644); err != nil {
		t.Fatalf("Failed to seed gitignore: %v", err)
	}

	if err := RunAll(ctx); err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}

	content, err := os.ReadFile(gitignorePath)
	if err != nil {
		t.Fatalf("Failed to read gitignore: %v", err)
	}

	if !strings.HasPrefix(string(content), seed) {
		t.Errorf("original gitignore entries were not preserved:\n%s", content)
	}
	if strings.Count(string(content), fixtures.GitignoreEntry) != 1 {
		t.Errorf("entry was not appended exactly once:\n%s", content)
	}
}

func TestRunAllTwiceConverges(t *testing.T) {
	ctx, _, tmpDir := newTestContext(t)

	if err := RunAll(ctx); err != nil {
		t.Fatalf("first RunAll() error = %v", err)
	}
	first := snapshot(t, tmpDir)

	// Fresh output buffer for the second run; messages may differ, state may not
	ctx.UI = ui.NewWithWriter(&bytes.Buffer{})
	if err := RunAll(ctx); err != nil {
		t.Fatalf("second RunAll() error = %v", err)
	}
	second := snapshot(t, tmpDir)

	if len(first) != len(second) {
		t.Fatalf("file set changed between runs: %d vs %d files", len(first), len(second))
	}
	for path, content := range first {
		if second[path] != content {
			t.Errorf("%s changed between runs", path)
		}
	}
}

func TestStatus(t *testing.T) {
	ctx, out, _ := newTestContext(t)

	// Before generation everything is missing
	if err := Status(ctx); err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !strings.Contains(out.String(), "(missing)") {
		t.Errorf("Status() on an empty directory reported nothing missing:\n%s", out.String())
	}

	if err := RunAll(ctx); err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}

	var after bytes.Buffer
	ctx.UI = ui.NewWithWriter(&after)
	if err := Status(ctx); err != nil {
		t.Fatalf("Status() after RunAll() error = %v", err)
	}
	if strings.Contains(after.String(), "(missing)") {
		t.Errorf("Status() after generation still reports missing pieces:\n%s", after.String())
	}
	if !strings.Contains(after.String(), fixtures.GitignoreEntry) {
		t.Errorf("Status() does not report the gitignore entry:\n%s", after.String())
	}
}
