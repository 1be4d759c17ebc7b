// Package fixtures defines the fixed test-link tree consumed by urlsup:
// the directory layout, the three Markdown documents, and the gitignore
// entry that keeps the generated tree out of version control.
package fixtures

import "path/filepath"

const (
	// RootDir is the top-level directory of the generated tree
	RootDir = "test-links-dir"

	// DirOne is the first-level subdirectory inside RootDir
	DirOne = "dir-one"

	// DirTwo is the second-level subdirectory inside DirOne
	DirTwo = "dir-two"
)

const (
	// GitignoreFile is the version-control exclusion file in the working directory
	GitignoreFile = ".gitignore"

	// GitignoreEntry is the exclusion line for the generated tree
	GitignoreEntry = "test-links-dir/"

	// GitignoreComment precedes GitignoreEntry when the entry is newly added
	GitignoreComment = "# Generated test directory"
)

const workingURLs = `# Working URLs Test File

This file contains URLs that should work:

- GitHub: https://github.com
- Example: https://example.com
- HTTPBin: https://httpbin.org/get
- Google: https://google.com
- Rust docs: https://doc.rust-lang.org/
- Crates.io: https://crates.io/
`

const brokenURLs = `# Broken URLs Test File

This file contains URLs that should fail:

- Non-existent domain: https://this-domain-does-not-exist-12345.invalid
- 404 error: https://httpbin.org/status/404
- 500 error: https://httpbin.org/status/500
- Timeout: https://httpbin.org/delay/60
- Invalid URL: https://
`

const mixedURLs = `# Mixed URLs Test File

This file contains a mix of working and broken URLs:

- Working: https://example.com
- Broken: https://fake-domain-12345.com
- Working: https://httpbin.org/status/200
- Broken: https://httpbin.org/status/404
- Working: https://github.com/microsoft/vscode
- Broken: https://github.com/non-existent-user/non-existent-repo
`

// Document is a fixture file bound to one directory of the tree
type Document struct {
	Name        string
	RelDir      string // directory path relative to the working directory
	Description string
	Content     string
}

// Path returns the document path relative to the working directory
func (d Document) Path() string {
	return filepath.Join(d.RelDir, d.Name)
}

// Directories returns the fixture directories in creation order (parents first)
func Directories() []string {
	return []string{
		RootDir,
		filepath.Join(RootDir, DirOne),
		filepath.Join(RootDir, DirOne, DirTwo),
	}
}

// Documents returns the fixture documents in write order
func Documents() []Document {
	return []Document{
		{
			Name:        "working-urls.md",
			RelDir:      filepath.Join(RootDir, DirOne),
			Description: "URLs that should work",
			Content:     workingURLs,
		},
		{
			Name:        "broken-urls.md",
			RelDir:      RootDir,
			Description: "URLs that should fail",
			Content:     brokenURLs,
		},
		{
			Name:        "mixed-urls.md",
			RelDir:      filepath.Join(RootDir, DirOne, DirTwo),
			Description: "a mix of working and broken URLs",
			Content:     mixedURLs,
		},
	}
}
