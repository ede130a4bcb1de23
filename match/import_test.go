package match

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"chb/common"
	"chb/topic"
)

// fakeProject copies files like the real one so the reader can open them at
// their registered destination.
type fakeProject struct {
	filename string
	added    []string
}

func (p *fakeProject) Filename() string { return p.filename }

func (p *fakeProject) AddFileToProject(src, dest string) (ContentFile, error) {
	if src != dest {
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return nil, err
		}
	}
	p.added = append(p.added, dest)
	return &fakeContentFile{path: dest, action: common.BuildActionContent}, nil
}

// importReader treats the trimmed file content as the declared id. Special
// content selects failure modes.
type importReader struct{}

func (importReader) ReadTopicFile(path string) (string, common.DocumentKind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", common.DocumentKindInvalid, err
	}
	id := strings.TrimSpace(string(data))
	switch id {
	case "FAIL":
		return "", common.DocumentKindInvalid, errors.New("broken file")
	case "INVALID":
		return "", common.DocumentKindInvalid, nil
	case "EMPTY":
		return "", common.DocumentKindConceptual, nil
	}
	return id, common.DocumentKindConceptual, nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func importInto(t *testing.T, base string, opts ImportOptions) (*topic.List, *fakeProject, error) {
	t.Helper()
	list := topic.NewList()
	prj := &fakeProject{filename: filepath.Join(base, "help.project")}
	err := AddTopicsFromFolder(list, base, base, prj, importReader{}, opts, testLogger(t))
	return list, prj, err
}

func TestAddTopicsFromFolderArguments(t *testing.T) {
	list := topic.NewList()
	log := testLogger(t)

	if err := AddTopicsFromFolder(list, t.TempDir(), "/base", nil, importReader{}, ImportOptions{}, log); err != ErrNilProject {
		t.Errorf("nil project error = %v, want %v", err, ErrNilProject)
	}
	if err := AddTopicsFromFolder(list, t.TempDir(), "", &fakeProject{}, importReader{}, ImportOptions{}, log); err != ErrEmptyBasePath {
		t.Errorf("empty base path error = %v, want %v", err, ErrEmptyBasePath)
	}
}

func TestAddTopicsFromFolderOrdering(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Chapter10.aml"), "ch10")
	writeFile(t, filepath.Join(base, "Chapter2.aml"), "ch2")
	writeFile(t, filepath.Join(base, "notes.txt"), "ignored")

	list, _, err := importInto(t, base, ImportOptions{})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}

	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}
	// natural order, not lexicographic
	if list.At(0).ID != "ch2" || list.At(1).ID != "ch10" {
		t.Errorf("order = %s, %s; want ch2, ch10", list.At(0).ID, list.At(1).ID)
	}
}

func TestAddTopicsFromFolderContainers(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Guide", "Overview.aml"), "overview")
	writeFile(t, filepath.Join(base, "Guide", "Deep", "Inner.aml"), "inner")

	list, _, err := importInto(t, base, ImportOptions{})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}

	if list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", list.Len())
	}
	guide := list.At(0)
	if guide.Title != "Guide" || guide.File != nil {
		t.Errorf("container = %+v, want file-less topic titled Guide", guide)
	}
	if len(guide.ID) == 0 {
		t.Error("container must get a minted id")
	}
	if guide.Subtopics.Len() != 2 {
		t.Fatalf("container children = %d, want 2", guide.Subtopics.Len())
	}
	// files come before subfolders
	if overview := guide.Subtopics.At(0); overview.ID != "overview" {
		t.Errorf("file topic id = %s, want overview", overview.ID)
	}
	deep := guide.Subtopics.At(1)
	if deep.Title != "Deep" || deep.Subtopics.Len() != 1 {
		t.Errorf("nested container = %+v", deep)
	}
}

func TestAddTopicsFromFolderPromotion(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Guide", "Guide.aml"), "guide-id")
	writeFile(t, filepath.Join(base, "Guide", "Other.aml"), "other-id")

	list, _, err := importInto(t, base, ImportOptions{})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}

	if list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", list.Len())
	}
	guide := list.At(0)
	// container takes over the matching file's identity
	if guide.ID != "guide-id" || guide.File == nil {
		t.Errorf("promoted container = %+v, want id and file from Guide.aml", guide)
	}
	if len(guide.Title) != 0 {
		t.Errorf("promoted container title = %q, want empty", guide.Title)
	}
	if guide.Subtopics.Len() != 1 || guide.Subtopics.At(0).ID != "other-id" {
		t.Error("promoted file must not stay as a separate child")
	}
}

func TestAddTopicsFromFolderPromotionIsCaseSensitive(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Guide", "guide.aml"), "guide-id")

	list, _, err := importInto(t, base, ImportOptions{})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}

	guide := list.At(0)
	if guide.Title != "Guide" || guide.File != nil {
		t.Error("file differing in name case must not be promoted")
	}
	if guide.Subtopics.Len() != 1 {
		t.Error("non-promoted file must stay as a child")
	}
}

func TestAddTopicsFromFolderSkipsEmptyFolders(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "Empty"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(base, "Junk", "readme.txt"), "not markup")
	writeFile(t, filepath.Join(base, "Topic.aml"), "topic")

	list, _, err := importInto(t, base, ImportOptions{})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}
	if list.Len() != 1 || list.At(0).ID != "topic" {
		t.Errorf("folders without importable content must not create containers, got %d topics", list.Len())
	}
}

func TestAddTopicsFromFolderPartialFailure(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Bad.aml"), "FAIL")
	writeFile(t, filepath.Join(base, "Good.aml"), "good")
	writeFile(t, filepath.Join(base, "Sub", "AlsoBad.aml"), "FAIL")
	writeFile(t, filepath.Join(base, "Sub", "AlsoGood.aml"), "also-good")

	list, _, err := importInto(t, base, ImportOptions{})
	if err == nil {
		t.Fatal("expected aggregated error for failed files")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("aggregated %d errors, want 2", got)
	}

	// good files made it in despite the failures
	if list.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", list.Len())
	}
	if list.At(0).ID != "good" {
		t.Errorf("first topic = %s, want good", list.At(0).ID)
	}
	sub := list.At(1)
	if sub.Subtopics.Len() != 1 || sub.Subtopics.At(0).ID != "also-good" {
		t.Error("successful file in failing folder must still be imported")
	}
}

func TestAddTopicsFromFolderSkipsNotImportable(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "NotATopic.aml"), "INVALID")
	writeFile(t, filepath.Join(base, "Real.aml"), "real")

	list, _, err := importInto(t, base, ImportOptions{})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}
	if list.Len() != 1 || list.At(0).ID != "real" {
		t.Error("file classified invalid must be skipped without error")
	}
}

func TestAddTopicsFromFolderMintsMissingIDs(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "Anonymous.aml"), "EMPTY")

	list, _, err := importInto(t, base, ImportOptions{})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}
	if list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", list.Len())
	}
	tp := list.At(0)
	if len(tp.ID) == 0 {
		t.Error("topic without declared id must get a minted one")
	}
	// the file reference keeps what the file actually declared
	if tp.File == nil || len(tp.File.ID) != 0 {
		t.Errorf("file reference = %+v, want empty declared id", tp.File)
	}
}

func TestAddTopicsFromFolderDetectBinary(t *testing.T) {
	base := t.TempDir()
	// PNG signature with markup extension
	png := string([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0})
	writeFile(t, filepath.Join(base, "sneaky.aml"), png)
	writeFile(t, filepath.Join(base, "Real.aml"), "real")

	list, _, err := importInto(t, base, ImportOptions{DetectBinary: true})
	if err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}
	if list.Len() != 1 || list.At(0).ID != "real" {
		t.Error("binary content with markup extension must be skipped")
	}
}

func TestAddTopicsFromFolderRebasesOutsideFiles(t *testing.T) {
	base := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "External.aml"), "external")

	list := topic.NewList()
	prj := &fakeProject{filename: filepath.Join(base, "help.project")}
	if err := AddTopicsFromFolder(list, outside, base, prj, importReader{}, ImportOptions{}, testLogger(t)); err != nil {
		t.Fatalf("AddTopicsFromFolder() error = %v", err)
	}

	if list.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", list.Len())
	}
	tp := list.At(0)
	want := filepath.Join(base, "External.aml")
	if tp.File == nil || tp.File.Path != want {
		t.Errorf("imported file path = %v, want rebased %s", tp.File, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("rebased file not copied into base path: %v", err)
	}
}

func TestIsBinaryFile(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "text.aml")
	writeFile(t, text, "<topic id='x'/>")
	if bin, err := isBinaryFile(text); err != nil || bin {
		t.Errorf("isBinaryFile(text) = %v, %v; want false, nil", bin, err)
	}

	short := filepath.Join(dir, "short.aml")
	writeFile(t, short, "x")
	if bin, err := isBinaryFile(short); err != nil || bin {
		t.Errorf("isBinaryFile(short) = %v, %v; want false, nil", bin, err)
	}

	if _, err := isBinaryFile(filepath.Join(dir, "missing.aml")); err == nil {
		t.Error("isBinaryFile(missing) must fail")
	}
}

func TestNaturalCmp(t *testing.T) {
	if naturalCmp("a2", "a10") >= 0 {
		t.Error("a2 must sort before a10")
	}
	if naturalCmp("a10", "a2") <= 0 {
		t.Error("a10 must sort after a2")
	}
	if naturalCmp("same", "same") != 0 {
		t.Error("equal strings must compare equal")
	}
}
