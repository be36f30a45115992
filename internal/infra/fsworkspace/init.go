package fsworkspace

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/recordemit/internal/domain"
)

//go:embed templates/*
var templatesFS embed.FS

const gitignoreHeader = "# recordemit"

type Initializer struct {
	ignore []string
}

// NewInitializer returns an Initializer that keeps the outputs named by cfg out of git.
func NewInitializer(cfg domain.Config) *Initializer {
	return &Initializer{ignore: IgnoreEntries(cfg)}
}

// Init writes recordemit.yaml into spec.Root and updates .gitignore.
// Existing files are kept unless force is set. It returns the paths written.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) ([]string, error) {
	root := filepath.Clean(spec.Root)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, initError(root, err)
	}

	var written []string
	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		dst := filepath.Join(root, strings.TrimPrefix(p, "templates/"))
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return initError(dst, err)
		}
		written = append(written, dst)
		return nil
	})
	if err != nil {
		return written, err
	}

	changed, err := ensureGitignore(root, i.ignore)
	if err != nil {
		return written, initError(filepath.Join(root, ".gitignore"), err)
	}
	if changed {
		written = append(written, filepath.Join(root, ".gitignore"))
	}
	return written, nil
}

// IgnoreEntries turns the configured outputs into .gitignore patterns relative
// to the workspace root. Outputs that land outside the root are skipped.
func IgnoreEntries(cfg domain.Config) []string {
	dir := filepath.Clean(cfg.OutputDir)
	if filepath.IsAbs(dir) || dir == ".." || strings.HasPrefix(dir, ".."+string(filepath.Separator)) {
		return nil
	}

	var out []string
	seen := map[string]bool{}
	for _, name := range cfg.Files.List() {
		if filepath.IsAbs(name) {
			continue
		}
		rel := filepath.Clean(filepath.Join(dir, name))
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		e := filepath.ToSlash(rel)
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// ensureGitignore adds the entries root/.gitignore does not list yet, under
// a "# recordemit" header. It reports whether the file changed.
func ensureGitignore(root string, entries []string) (bool, error) {
	path := filepath.Join(root, ".gitignore")
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	listed := map[string]bool{}
	sc := bufio.NewScanner(bytes.NewReader(existing))
	for sc.Scan() {
		listed[strings.TrimSpace(sc.Text())] = true
	}
	if err := sc.Err(); err != nil {
		return false, err
	}

	var block bytes.Buffer
	for _, e := range entries {
		if listed[e] {
			continue
		}
		listed[e] = true
		block.WriteString(e)
		block.WriteByte('\n')
	}
	if block.Len() == 0 {
		return false, nil
	}

	var buf bytes.Buffer
	buf.Write(existing)
	if len(existing) > 0 {
		if !bytes.HasSuffix(existing, []byte("\n")) {
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	if !listed[gitignoreHeader] {
		buf.WriteString(gitignoreHeader + "\n")
	}
	buf.Write(block.Bytes())

	return true, os.WriteFile(path, buf.Bytes(), 0o644)
}

func initError(path string, err error) error {
	return &domain.OpError{Op: "workspace.init", Kind: domain.KindOutputWrite, Path: path, Err: err}
}
