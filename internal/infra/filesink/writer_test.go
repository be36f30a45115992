package filesink

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/recordemit/internal/domain"
)

func TestWriteLines_OnePerLine(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")

	if err := New().WriteLines(path, []string{"ALICE", "BOB", "CHARLIE", "DIANA"}); err != nil {
		t.Fatalf("WriteLines error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if got, want := string(b), "ALICE\nBOB\nCHARLIE\nDIANA\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}

func TestWriteLines_EmptyProducesEmptyFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")

	if err := New().WriteLines(path, nil); err != nil {
		t.Fatalf("WriteLines error: %v", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file at %s, stat err=%v", path, err)
	}
	if st.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", st.Size())
	}
}

func TestWriteLines_OverwritesExisting(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")
	if err := os.WriteFile(path, []byte("stale\nstale\nstale\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New()
	for i := 0; i < 2; i++ {
		if err := w.WriteLines(path, []string{"A"}); err != nil {
			t.Fatalf("WriteLines #%d error: %v", i, err)
		}
	}

	b, _ := os.ReadFile(path)
	if string(b) != "A\n" {
		t.Fatalf("expected overwrite without append, got %q", string(b))
	}
}

func TestWriteLines_FilePermissions(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")

	if err := New(WithPerm(0o600)).WriteLines(path, []string{"x"}); err != nil {
		t.Fatalf("WriteLines error: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("expected perm 0600, got %v", st.Mode().Perm())
	}
}

func TestWriteDocument_PrettyOrderedWithTrailingNewline(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.json")

	people := domain.DefaultPeople()
	if err := New().WriteDocument(path, people); err != nil {
		t.Fatalf("WriteDocument error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	s := string(b)

	if !strings.HasSuffix(s, "]\n") || strings.HasSuffix(s, "\n\n") {
		t.Fatalf("expected exactly one trailing newline, got %q", s)
	}
	if !strings.HasPrefix(s, "[\n  {\n    \"name\"") {
		t.Fatalf("expected two-space indented document, got:\n%s", s)
	}
	iName, iAge, iDept := strings.Index(s, `"name"`), strings.Index(s, `"age"`), strings.Index(s, `"department"`)
	if !(iName < iAge && iAge < iDept) {
		t.Fatalf("expected field order name, age, department, got:\n%s", s)
	}

	var decoded []domain.Person
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(people, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDocument_EmptySlice(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.json")

	if err := New().WriteDocument(path, []domain.Person{}); err != nil {
		t.Fatalf("WriteDocument error: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "[]\n" {
		t.Fatalf("expected empty array document, got %q", string(b))
	}
}

func TestWriteDocument_MarshalErrorLeavesNoFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.json")

	err := New().WriteDocument(path, make(chan int))
	if err == nil {
		t.Fatalf("expected marshal error")
	}
	if !domain.IsKind(err, domain.KindOutputWrite) {
		t.Fatalf("expected output_write kind, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no file, stat err=%v", statErr)
	}
}

func TestWriteTable_CSV(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "sales.csv")

	rows := [][]string{
		{"Laptop", "50", "999.99", "49999.50"},
		{"Mouse, wireless", "200", "29.99", "5998.00"},
	}
	if err := New().WriteTable(path, []string{"product", "quantity", "price", "revenue"}, rows); err != nil {
		t.Fatalf("WriteTable error: %v", err)
	}

	b, _ := os.ReadFile(path)
	want := "product,quantity,price,revenue\n" +
		"Laptop,50,999.99,49999.50\n" +
		"\"Mouse, wireless\",200,29.99,5998.00\n"
	if string(b) != want {
		t.Fatalf("content = %q, want %q", string(b), want)
	}
}

func TestWrite_MissingDirectory(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "missing", "output.txt")

	err := New().WriteLines(path, []string{"A"})
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if !domain.IsKind(err, domain.KindOutputWrite) {
		t.Fatalf("expected output_write kind, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(tmp, "missing")); !os.IsNotExist(statErr) {
		t.Fatalf("expected directory not to be created")
	}
}

func TestWrite_DestinationIsDirectory_LeavesNoTemp(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	err := New().WriteLines(path, []string{"A"})
	if err == nil {
		t.Fatalf("expected rename over a directory to fail")
	}
	if !domain.IsKind(err, domain.KindOutputWrite) {
		t.Fatalf("expected output_write kind, got %v", err)
	}

	entries, _ := os.ReadDir(tmp)
	if len(entries) != 1 || entries[0].Name() != "output.txt" || !entries[0].IsDir() {
		t.Fatalf("expected only the original directory to remain, got %v", entries)
	}
}

func TestWriteLines_FollowsSymlink(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "real.txt")
	link := filepath.Join(tmp, "output.txt")
	if err := os.WriteFile(target, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	if err := New().WriteLines(link, []string{"ALICE"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "ALICE\n" {
		t.Fatalf("expected link target rewritten, got %q", string(b))
	}
	st, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("expected output.txt to stay a symlink, mode %v", st.Mode())
	}
}

func TestWriteLines_KeepsExistingMode(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")
	if err := os.WriteFile(path, []byte("old\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := New().WriteLines(path, []string{"BOB"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("expected perm 0600 kept, got %v", st.Mode().Perm())
	}
}

func TestWriteLines_ReadOnlyDirRewritesInPlace(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "locked")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "output.txt")
	if err := os.WriteFile(path, []byte("stale\nstale\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if err := New().WriteLines(path, []string{"CHARLIE"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "CHARLIE\n" {
		t.Fatalf("content = %q, want %q", string(b), "CHARLIE\n")
	}
}

func TestWrite_FillErrorReportsDestination(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "output.txt")

	err := New().write("filesink.write_lines", path, func(*bufio.Writer) error {
		return errors.New("boom")
	})

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OpError, got %v", err)
	}
	if oe.Path != path {
		t.Fatalf("expected error path %q, got %q", path, oe.Path)
	}
	entries, _ := os.ReadDir(tmp)
	if len(entries) != 0 {
		t.Fatalf("expected no temp file left behind, got %v", entries)
	}
}
