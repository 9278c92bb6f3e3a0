package fixnames

import (
	"testing"

	"github.com/arthur-debert/fixnames/pkg/fixnames/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		kind Kind
		want NameParts
	}{
		{"file with extension", "docs/report.txt", KindFile, NameParts{Dir: "docs/", Base: "report", Ext: ".txt"}},
		{"compound extension keeps last segment", "archive.tar.gz", KindFile, NameParts{Base: "archive.tar", Ext: ".gz"}},
		{"long suffix is not an extension", "a/notes.markdown", KindFile, NameParts{Dir: "a/", Base: "notes.markdown"}},
		{"directory never has extension", "/tmp/photos.2024", KindDirectory, NameParts{Dir: "/tmp/", Base: "photos.2024"}},
		{"absolute root child", "/file.TXT", KindFile, NameParts{Dir: "/", Base: "file", Ext: ".TXT"}},
		{"trailing slash dropped", "music/Old Songs/", KindDirectory, NameParts{Dir: "music/", Base: "Old Songs"}},
		{"dot relative prefix", "./My File.txt", KindFile, NameParts{Dir: "./", Base: "My File", Ext: ".txt"}},
		{"hidden file", "home/.bashrc", KindFile, NameParts{Dir: "home/", Base: "", Ext: ".bashrc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPath(tt.path, tt.kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamePartsJoinRebuildsPath(t *testing.T) {
	for _, p := range []string{"a/b/c.txt", "/abs/x", "plain", "./rel/y.JPG", "dir.d/file.tar.gz", "/"} {
		for _, kind := range []Kind{KindFile, KindDirectory} {
			assert.Equal(t, p, SplitPath(p, kind).Join(), "path %q as %s", p, kind)
		}
	}
}

func TestNamePartsSanitized(t *testing.T) {
	parts := SplitPath("Some Dir/My Photo (1).JPG", KindFile)
	cleaned := parts.Sanitized(DefaultOptions().Sanitizer())

	assert.Equal(t, "Some Dir/", cleaned.Dir, "directory part is never rewritten")
	assert.Equal(t, "my_photo_1_", cleaned.Base)
	assert.Equal(t, ".jpg", cleaned.Ext)
	assert.Equal(t, "my_photo_1_.jpg", cleaned.Name())
}

func TestClassify(t *testing.T) {
	th := filesystem.NewTestHelper(t)
	th.WriteFile("file.txt", nil)
	th.MkdirAll("dir")
	th.Symlink("file.txt", "link")

	tests := []struct {
		path string
		want Kind
	}{
		{"file.txt", KindFile},
		{"dir", KindDirectory},
		{"link", KindSymlink},
		{"missing", KindMissing},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, err := Classify(th.FileSystem(), tt.path)
			assert.Equal(t, tt.want, kind)
			if tt.want == KindMissing {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIsDotEntry(t *testing.T) {
	assert.True(t, isDotEntry("."))
	assert.True(t, isDotEntry(".."))
	assert.True(t, isDotEntry("a/.."))
	assert.True(t, isDotEntry("a/./"))
	assert.False(t, isDotEntry(".hidden"))
	assert.False(t, isDotEntry("a/..b"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDirectory.String())
	assert.Equal(t, "symlink", KindSymlink.String())
	assert.Equal(t, "missing", KindMissing.String())
	assert.Equal(t, "other", KindOther.String())
}
