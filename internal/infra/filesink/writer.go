package filesink

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/ports"
)

const (
	defaultPerm   fs.FileMode = 0o644
	defaultIndent             = "  "
)

// Writer writes emitter output to local files.
//
// Every write goes to a temporary file next to the destination and is renamed
// into place only after the buffered data has been flushed, synced and closed.
// A failed write leaves the destination exactly as it was. Symlinks are
// followed and an existing file keeps its permission bits. When the directory
// is not writable but the file is, the file is truncated and rewritten in place.
type Writer struct {
	perm   fs.FileMode
	indent string
}

type Option func(*Writer)

// WithPerm sets the permission bits of newly created files.
func WithPerm(perm fs.FileMode) Option {
	return func(w *Writer) { w.perm = perm }
}

// WithIndent sets the indent used for structured documents.
func WithIndent(indent string) Option {
	return func(w *Writer) { w.indent = indent }
}

func New(opts ...Option) *Writer {
	w := &Writer{
		perm:   defaultPerm,
		indent: defaultIndent,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

var _ ports.OutputSink = (*Writer)(nil)

// WriteLines writes each line followed by '\n'. No lines means an empty file.
func (w *Writer) WriteLines(path string, lines []string) error {
	return w.write("filesink.write_lines", path, func(bw *bufio.Writer) error {
		for _, l := range lines {
			if _, err := bw.WriteString(l); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteDocument writes v as indented JSON followed by a trailing newline.
// Struct fields keep their declared order.
func (w *Writer) WriteDocument(path string, v any) error {
	b, err := json.Marshal(v, jsontext.WithIndent(w.indent))
	if err != nil {
		return &domain.OpError{
			Op:   "filesink.marshal",
			Kind: domain.KindOutputWrite,
			Path: path,
			Err:  err,
		}
	}

	return w.write("filesink.write_document", path, func(bw *bufio.Writer) error {
		if _, err := bw.Write(b); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	})
}

// WriteTable writes a CSV table. A nil header writes rows only.
func (w *Writer) WriteTable(path string, header []string, rows [][]string) error {
	return w.write("filesink.write_table", path, func(bw *bufio.Writer) error {
		cw := csv.NewWriter(bw)
		if header != nil {
			if err := cw.Write(header); err != nil {
				return err
			}
		}
		// WriteAll flushes the csv writer into bw.
		return cw.WriteAll(rows)
	})
}

// destination follows symlinks to the file that receives the content and
// returns the mode it should keep. A missing file gets the writer's perm.
func (w *Writer) destination(path string) (string, fs.FileMode, bool) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path, w.perm, false
	}
	info, err := os.Stat(target)
	if err != nil || !info.Mode().IsRegular() {
		return target, w.perm, false
	}
	return target, info.Mode().Perm(), true
}

func (w *Writer) write(op, path string, fill func(*bufio.Writer) error) (err error) {
	target, perm, exists := w.destination(path)

	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		if exists && errors.Is(err, fs.ErrPermission) {
			return w.writeInPlace(op, path, target, fill)
		}
		return &domain.OpError{Op: op, Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	tmp := f.Name()

	closed := false
	defer func() {
		if !closed {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &domain.OpError{Op: "filesink.flush", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	if err := f.Chmod(perm); err != nil {
		return &domain.OpError{Op: "filesink.chmod", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		return &domain.OpError{Op: "filesink.sync", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}

	closed = true
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "filesink.close", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}

	if err := os.Rename(tmp, target); err != nil {
		return &domain.OpError{Op: "filesink.rename", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	return nil
}

// writeInPlace truncates and rewrites an existing file whose directory does not
// allow creating the temporary file. A failure here can leave partial content.
func (w *Writer) writeInPlace(op, path, target string, fill func(*bufio.Writer) error) error {
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindOutputWrite, Path: path, Err: err}
	}

	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		_ = f.Close()
		return &domain.OpError{Op: op, Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return &domain.OpError{Op: "filesink.flush", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return &domain.OpError{Op: "filesink.sync", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.OpError{Op: "filesink.close", Kind: domain.KindOutputWrite, Path: path, Err: err}
	}
	return nil
}
