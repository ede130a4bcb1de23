package project

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"chb/common"
)

func testLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
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

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "intro.aml"), "")
	writeFile(t, filepath.Join(root, "media", "logo.png"), "")
	writeFile(t, filepath.Join(root, "tokens.tokens"), "")
	writeFile(t, filepath.Join(root, "readme.md"), "")

	prjFile := filepath.Join(root, "help.project")
	writeFile(t, prjFile, "")

	prj, err := Scan(prjFile, ".aml", testLogger(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	actions := make(map[string]common.BuildAction)
	for _, cf := range prj.ContentFiles() {
		actions[filepath.Base(cf.Path())] = cf.BuildAction()
	}

	// the project file itself is not part of the inventory
	if _, ok := actions["help.project"]; ok {
		t.Error("project file listed in its own inventory")
	}
	want := map[string]common.BuildAction{
		"intro.aml":     common.BuildActionContent,
		"logo.png":      common.BuildActionImage,
		"tokens.tokens": common.BuildActionResource,
		"readme.md":     common.BuildActionNone,
	}
	for name, action := range want {
		if got := actions[name]; got != action {
			t.Errorf("%s classified %v, want %v", name, got, action)
		}
	}
}

func TestAddFileToProject(t *testing.T) {
	root := t.TempDir()
	prjFile := filepath.Join(root, "help.project")
	writeFile(t, prjFile, "")

	prj, err := Scan(prjFile, ".aml", testLogger(t))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	t.Run("same source and destination", func(t *testing.T) {
		path := filepath.Join(root, "local.aml")
		writeFile(t, path, "content")

		cf, err := prj.AddFileToProject(path, path)
		if err != nil {
			t.Fatalf("AddFileToProject() error = %v", err)
		}
		if cf.Path() != path || cf.BuildAction() != common.BuildActionContent {
			t.Errorf("entry = %s / %v", cf.Path(), cf.BuildAction())
		}
	})

	t.Run("copies when destination differs", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "external.aml")
		writeFile(t, outside, "external content")
		dest := filepath.Join(root, "copied", "external.aml")

		cf, err := prj.AddFileToProject(outside, dest)
		if err != nil {
			t.Fatalf("AddFileToProject() error = %v", err)
		}
		if cf.Path() != dest {
			t.Errorf("Path() = %s, want %s", cf.Path(), dest)
		}
		data, err := os.ReadFile(dest)
		if err != nil || string(data) != "external content" {
			t.Errorf("copy not made: %v %q", err, data)
		}
	})

	t.Run("known destination is a no-op", func(t *testing.T) {
		path := filepath.Join(root, "local.aml")
		before := len(prj.ContentFiles())

		if _, err := prj.AddFileToProject(path, path); err != nil {
			t.Fatalf("AddFileToProject() error = %v", err)
		}
		if got := len(prj.ContentFiles()); got != before {
			t.Errorf("inventory grew from %d to %d on duplicate add", before, got)
		}
	})
}
