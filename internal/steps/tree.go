package steps

import (
	"fmt"
	"path/filepath"

	"github.com/urlsup-dev/urlsup-testgen/internal/fixtures"
	"github.com/urlsup-dev/urlsup-testgen/internal/system"
	"github.com/urlsup-dev/urlsup-testgen/internal/ui"
)

// TreeStep materializes the fixture directory tree and its documents
type TreeStep struct {
	fs      *system.FileSystem
	ui      *ui.UI
	workDir string
}

// NewTreeStep creates a new TreeStep instance rooted at workDir
func NewTreeStep(fs *system.FileSystem, ui *ui.UI, workDir string) *TreeStep {
	return &TreeStep{
		fs:      fs,
		ui:      ui,
		workDir: workDir,
	}
}

// Run creates the fixture directories and writes the fixture documents.
// Directories are created only if missing; documents are always rewritten
// so that a rerun repairs any locally modified fixture.
func (t *TreeStep) Run() error {
	t.ui.Info("Creating test directory structure...")

	for _, dir := range fixtures.Directories() {
		path := filepath.Join(t.workDir, dir)

		if err := t.fs.EnsureDirectory(path, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		t.ui.Successf("  ✓ Directory %s/", dir)
	}

	t.ui.Print("")
	t.ui.Info("Writing fixture documents...")

	for _, doc := range fixtures.Documents() {
		path := filepath.Join(t.workDir, doc.Path())

		if err := t.fs.WriteFile(path, []byte(doc.Content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", doc.Path(), err)
		}

		t.ui.Successf("  ✓ Wrote %s (%s)", doc.Path(), doc.Description)
	}

	return nil
}

// Verify checks that every directory and document of the tree exists
func (t *TreeStep) Verify() error {
	for _, dir := range fixtures.Directories() {
		path := filepath.Join(t.workDir, dir)

		exists, err := t.fs.DirectoryExists(path)
		if err != nil {
			return fmt.Errorf("failed to check directory %s: %w", dir, err)
		}
		if !exists {
			return fmt.Errorf("directory %s was not created", dir)
		}
	}

	for _, doc := range fixtures.Documents() {
		path := filepath.Join(t.workDir, doc.Path())

		exists, err := t.fs.FileExists(path)
		if err != nil {
			return fmt.Errorf("failed to check file %s: %w", doc.Path(), err)
		}
		if !exists {
			return fmt.Errorf("file %s was not created", doc.Path())
		}
	}

	return nil
}

// DisplayStructure displays the generated directory structure
func (t *TreeStep) DisplayStructure() {
	t.ui.Print("")
	t.ui.Info("Directory structure created:")
	t.ui.Print("")
	t.ui.Printf("%s/", fixtures.RootDir)
	t.ui.Print("  ├── broken-urls.md            (URLs that should fail)")
	t.ui.Printf("  └── %s/", fixtures.DirOne)
	t.ui.Print("      ├── working-urls.md       (URLs that should work)")
	t.ui.Printf("      └── %s/", fixtures.DirTwo)
	t.ui.Print("          └── mixed-urls.md     (mixed working and broken URLs)")
}
