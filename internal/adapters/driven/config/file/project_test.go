package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestProjectSource_Load_NoSources(t *testing.T) {
	source := NewProjectSource()

	cfg := source.Load(t.TempDir())

	require.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestProjectSource_Load_PackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{
		"name": "app",
		"config": {
			"commitmoji": {"subjectMaxLength": 50}
		}
	}`)

	cfg := NewProjectSource().Load(dir)

	assert.Equal(t, float64(50), cfg["subjectMaxLength"])
}

func TestProjectSource_Load_PackageJSONInAncestor(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, "package.json"), `{
		"config": {"commitmoji": {"scopes": ["api"]}}
	}`)

	cfg := NewProjectSource().Load(nested)

	assert.Equal(t, []any{"api"}, cfg["scopes"])
}

func TestProjectSource_Load_PackageJSONWinsOverCzrc(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{
		"config": {"commitmoji": {"subjectMaxLength": 50}}
	}`)
	writeFile(t, filepath.Join(dir, ".czrc"), `{
		"commitmoji": {"subjectMaxLength": 60, "scopes": ["api"]}
	}`)

	cfg := NewProjectSource().Load(dir)

	// The whole package.json config wins, not a per-field merge.
	assert.Equal(t, float64(50), cfg["subjectMaxLength"])
	assert.NotContains(t, cfg, "scopes")
}

func TestProjectSource_Load_EmptyPackageJSONSectionFallsThrough(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{
		"config": {"commitmoji": {}}
	}`)
	writeFile(t, filepath.Join(dir, ".czrc"), `{
		"commitmoji": {"subjectMaxLength": 60}
	}`)

	cfg := NewProjectSource().Load(dir)

	assert.Equal(t, float64(60), cfg["subjectMaxLength"])
}

func TestProjectSource_Load_PackageJSONWithoutSectionFallsThrough(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{"name": "app"}`)
	writeFile(t, filepath.Join(dir, ".czrc"), `{
		"commitmoji": {"scopes": ["ui"]}
	}`)

	cfg := NewProjectSource().Load(dir)

	assert.Equal(t, []any{"ui"}, cfg["scopes"])
}

func TestProjectSource_Load_AncestorCzrc(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, ".czrc"), `{
		"commitmoji": {"skipQuestions": ["body"]}
	}`)

	cfg := NewProjectSource().Load(nested)

	assert.Equal(t, []any{"body"}, cfg["skipQuestions"])
}

func TestProjectSource_Load_MalformedPackageJSONFallsThrough(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "package.json"), `{not json`)
	writeFile(t, filepath.Join(dir, ".czrc"), `{
		"commitmoji": {"subjectMaxLength": 42}
	}`)

	cfg := NewProjectSource().Load(dir)

	assert.Equal(t, float64(42), cfg["subjectMaxLength"])
}

func TestProjectSource_Load_MalformedCzrcYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".czrc"), `not json at all`)

	cfg := NewProjectSource().Load(dir)

	require.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestProjectSource_Load_CzrcWithoutSectionYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".czrc"), `{"path": "cz-something"}`)

	cfg := NewProjectSource().Load(dir)

	require.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestFindUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, "marker"), "x")

	assert.Equal(t, filepath.Join(root, "marker"), findUp(nested, "marker"))
	assert.Equal(t, "", findUp(nested, "absent"))
}

func TestFindUp_DirectoryDoesNotCount(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "marker"), 0755))

	assert.Equal(t, "", findUp(root, "marker"))
}
