package steps

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urlsup-dev/urlsup-testgen/internal/fixtures"
	"github.com/urlsup-dev/urlsup-testgen/internal/system"
	"github.com/urlsup-dev/urlsup-testgen/internal/ui"
)

// GitignoreStep ensures the generated tree is excluded from version control
type GitignoreStep struct {
	fs      *system.FileSystem
	ui      *ui.UI
	workDir string
}

// NewGitignoreStep creates a new GitignoreStep instance rooted at workDir
func NewGitignoreStep(fs *system.FileSystem, ui *ui.UI, workDir string) *GitignoreStep {
	return &GitignoreStep{
		fs:      fs,
		ui:      ui,
		workDir: workDir,
	}
}

// entryBlock is the comment plus exclusion line written for a new entry
func entryBlock() string {
	return fixtures.GitignoreComment + "\n" + fixtures.GitignoreEntry + "\n"
}

// Run ensures .gitignore contains the exclusion entry for the fixture tree:
// the file is created if absent, appended to if it lacks the entry, and
// left byte-for-byte unchanged if the entry is already present.
//
// Presence is a plain substring scan for the root directory name over the
// whole file, so a commented-out mention also counts as present. The scan
// is intentionally that simple; entries added by hand in any format satisfy it.
func (g *GitignoreStep) Run() error {
	path := filepath.Join(g.workDir, fixtures.GitignoreFile)

	exists, err := g.fs.FileExists(path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", fixtures.GitignoreFile, err)
	}

	if !exists {
		if err := g.fs.WriteFile(path, []byte(entryBlock()), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", fixtures.GitignoreFile, err)
		}
		g.ui.Successf("Created %s with %s entry", fixtures.GitignoreFile, fixtures.GitignoreEntry)
		return nil
	}

	content, err := g.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fixtures.GitignoreFile, err)
	}

	if strings.Contains(string(content), fixtures.RootDir) {
		g.ui.Infof("%s already in %s", fixtures.GitignoreEntry, fixtures.GitignoreFile)
		return nil
	}

	if err := g.fs.AppendFile(path, []byte("\n"+entryBlock()), 0644); err != nil {
		return fmt.Errorf("failed to append to %s: %w", fixtures.GitignoreFile, err)
	}

	g.ui.Successf("Added %s to %s", fixtures.GitignoreEntry, fixtures.GitignoreFile)
	return nil
}

// HasEntry reports whether .gitignore exists and mentions the fixture tree.
// It never modifies the file.
func (g *GitignoreStep) HasEntry() (bool, error) {
	path := filepath.Join(g.workDir, fixtures.GitignoreFile)

	exists, err := g.fs.FileExists(path)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", fixtures.GitignoreFile, err)
	}
	if !exists {
		return false, nil
	}

	content, err := g.fs.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", fixtures.GitignoreFile, err)
	}

	return strings.Contains(string(content), fixtures.RootDir), nil
}
