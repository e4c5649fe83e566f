package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	flex "github.com/grindlemire/go-flex"
)

const demoYAML = `
name: demo
root:
  w: 300
  h: 100
  flex:
    direction: row
    justify-content: space-between
    padding: [10]
  children:
    - id: a
      w: 50
      h: 20
    - id: b
      w: "20%"
      h: 40
      item:
        align-self: center
    - id: c
      w: 50
      hidden: true
`

func buildYAML(t *testing.T, src string) *Scene {
	t.Helper()
	doc, err := Decode(strings.NewReader(src), "yaml")
	require.NoError(t, err)
	s, err := Build(doc)
	require.NoError(t, err)
	s.Layout()
	return s
}

func TestDecode_YAML(t *testing.T) {
	doc, err := Decode(strings.NewReader(demoYAML), "yaml")
	require.NoError(t, err)

	assert.Equal(t, "demo", doc.Name)
	assert.Equal(t, "300", doc.Root.W)
	require.NotNil(t, doc.Root.Flex)
	assert.Equal(t, "space-between", doc.Root.Flex.JustifyContent)
	assert.Equal(t, []float64{10}, doc.Root.Flex.Padding)
	require.Len(t, doc.Root.Children, 3)
	assert.Equal(t, "20%", doc.Root.Children[1].W)
	assert.True(t, doc.Root.Children[2].Hidden)
	assert.Equal(t, "demo (4 boxes)", doc.String())
}

func TestBuild_Layout(t *testing.T) {
	s := buildYAML(t, demoYAML)

	assert.Equal(t, flex.NewRect(0, 0, 320, 120), s.Root.Layout())
	assert.Equal(t, flex.NewRect(10, 10, 50, 20), s.Lookup("a").Layout())
	assert.Equal(t, flex.NewRect(250, 40, 60, 40), s.Lookup("b").Layout())
	assert.True(t, s.Lookup("c").Hidden())
}

func TestDecode_TOML(t *testing.T) {
	src := `
[root]
w = 100
h = 50

[root.flex]
direction = "column"

[[root.children]]
id = "x"
h = 10
`
	doc, err := Decode(strings.NewReader(src), "toml")
	require.NoError(t, err)
	s, err := Build(doc)
	require.NoError(t, err)
	s.Layout()

	assert.Equal(t, flex.NewRect(0, 0, 100, 10), s.Lookup("x").Layout())
}

func TestDecode_JSON(t *testing.T) {
	src := `{"root": {"w": 90, "h": 30, "flex": {"justify-content": "center"},
		"children": [{"id": "x", "w": "parent / 3", "item": {"shrink": 0}}]}}`
	doc, err := Decode(strings.NewReader(src), "json")
	require.NoError(t, err)
	s, err := Build(doc)
	require.NoError(t, err)
	s.Layout()

	assert.Equal(t, flex.NewRect(30, 0, 30, 30), s.Lookup("x").Layout())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoYAML), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", doc.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	src := `
root:
  w: "parent +"
  flex:
    direction: diagonal
    padding: [1, 2, 3]
  children:
    - id: a
      item:
        grow: -1
        align-self: sideways
    - id: a
      h: -5
`
	doc, err := Decode(strings.NewReader(src), "yaml")
	require.NoError(t, err)

	err = doc.Validate()
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 7)

	msg := err.Error()
	for _, want := range []string{
		"root.w:",
		"root.flex.direction:",
		"root.flex.padding:",
		"root.children[0].item.grow:",
		"root.children[0].item.align-self:",
		`root.children[1]: duplicate id "a"`,
		"root.children[1].h: negative size",
	} {
		assert.Contains(t, msg, want)
	}

	_, err = Build(doc)
	assert.Error(t, err)
}

func TestValidate_NegativeSize(t *testing.T) {
	doc := &Document{Root: BoxSpec{W: "-5"}}
	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root.w: negative size")
}

func TestBuild_GeneratesIDs(t *testing.T) {
	s := buildYAML(t, `
root:
  w: 10
  h: 10
  children:
    - w: 5
`)
	kids := s.Root.ChildBoxes()
	require.Len(t, kids, 1)
	assert.Len(t, kids[0].ID, 36)
	assert.Equal(t, "root", s.Root.ID)
}

func TestScene_WriteJSON(t *testing.T) {
	s := buildYAML(t, demoYAML)

	var buf bytes.Buffer
	require.NoError(t, s.WriteJSON(&buf))

	var results []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 4)
	assert.Equal(t, Result{
		ID: "b", Parent: "root", Depth: 1,
		X: 250, Y: 40, W: 60, H: 40,
		WorldX: 250, WorldY: 40,
	}, results[2])
	assert.True(t, results[3].Hidden)
}

func TestScene_WriteText(t *testing.T) {
	s := buildYAML(t, demoYAML)

	var buf bytes.Buffer
	require.NoError(t, s.WriteText(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"root", "0", "0", "320", "120"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"b", "250", "40", "60", "40"}, strings.Fields(lines[2]))
	assert.True(t, strings.HasPrefix(lines[1], "  a"))
	assert.Contains(t, lines[3], "(hidden)")
}
