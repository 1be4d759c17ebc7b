// Package cli wires the fixture generation steps together and provides the
// orchestration entry points invoked by the commands.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/urlsup-dev/urlsup-testgen/internal/fixtures"
	"github.com/urlsup-dev/urlsup-testgen/internal/steps"
	"github.com/urlsup-dev/urlsup-testgen/internal/system"
	"github.com/urlsup-dev/urlsup-testgen/internal/ui"
)

// GenerateContext holds all dependencies needed for fixture generation
type GenerateContext struct {
	FS *system.FileSystem
	UI *ui.UI
	// WorkDir is the directory the fixture tree and .gitignore live in
	WorkDir string
}

// NewGenerateContext creates a GenerateContext rooted at the current working directory
func NewGenerateContext() *GenerateContext {
	return NewGenerateContextIn(".")
}

// NewGenerateContextIn creates a GenerateContext rooted at workDir
func NewGenerateContextIn(workDir string) *GenerateContext {
	return &GenerateContext{
		FS:      system.NewFileSystem(),
		UI:      ui.New(),
		WorkDir: workDir,
	}
}

// RunAll runs the full generation sequence: fixture tree, documents, and
// the .gitignore exclusion entry. Steps already satisfied on disk are
// reported and skipped; documents are always rewritten.
func RunAll(ctx *GenerateContext) error {
	ctx.UI.Header("urlsup Test Fixture Generation")

	ctx.UI.Step("Fixture Tree")
	tree := steps.NewTreeStep(ctx.FS, ctx.UI, ctx.WorkDir)
	if err := tree.Run(); err != nil {
		return fmt.Errorf("fixture tree step failed: %w", err)
	}

	if err := tree.Verify(); err != nil {
		return fmt.Errorf("fixture tree verification failed: %w", err)
	}

	ctx.UI.Step("Version Control Exclusion")
	gitignore := steps.NewGitignoreStep(ctx.FS, ctx.UI, ctx.WorkDir)
	if err := gitignore.Run(); err != nil {
		return fmt.Errorf("gitignore step failed: %w", err)
	}

	tree.DisplayStructure()

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Successf("Created %s/ with 3 .md files in different directories", fixtures.RootDir)

	ctx.UI.Print("")
	ctx.UI.Info("Usage:")
	ctx.UI.Printf("  urlsup %s/ --recursive", fixtures.RootDir)
	ctx.UI.Printf("  urlsup %s", filepath.Join(fixtures.RootDir, fixtures.DirOne, fixtures.DirTwo)+"/")

	return nil
}

// Status reports the current on-disk state of the fixture tree and the
// .gitignore entry without modifying anything.
func Status(ctx *GenerateContext) error {
	ctx.UI.Header("urlsup Test Fixture Status")

	ctx.UI.Bold("Directories:")
	for _, dir := range fixtures.Directories() {
		exists, err := ctx.FS.DirectoryExists(filepath.Join(ctx.WorkDir, dir))
		if err != nil {
			return fmt.Errorf("failed to check directory %s: %w", dir, err)
		}
		if exists {
			ctx.UI.Successf("  %s/", dir)
		} else {
			ctx.UI.Warningf("  %s/ (missing)", dir)
		}
	}

	ctx.UI.Print("")
	ctx.UI.Bold("Documents:")
	for _, doc := range fixtures.Documents() {
		exists, err := ctx.FS.FileExists(filepath.Join(ctx.WorkDir, doc.Path()))
		if err != nil {
			return fmt.Errorf("failed to check file %s: %w", doc.Path(), err)
		}
		if exists {
			ctx.UI.Successf("  %s", doc.Path())
		} else {
			ctx.UI.Warningf("  %s (missing)", doc.Path())
		}
	}

	ctx.UI.Print("")
	ctx.UI.Bold("Version control:")
	gitignore := steps.NewGitignoreStep(ctx.FS, ctx.UI, ctx.WorkDir)
	hasEntry, err := gitignore.HasEntry()
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", fixtures.GitignoreFile, err)
	}
	if hasEntry {
		ctx.UI.Successf("  %s excludes %s", fixtures.GitignoreFile, fixtures.GitignoreEntry)
	} else {
		ctx.UI.Warningf("  %s does not exclude %s", fixtures.GitignoreFile, fixtures.GitignoreEntry)
	}

	return nil
}
