package tileclass

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	prompts := &fakePrompter{answers: []string{"lava", "no", "yes"}}
	out := &bytes.Buffer{}
	r := &Resolver{Prompter: prompts, Out: out, Dir: dir}

	crop, err := CropExtractor{}.Extract(solidImage(48, 48, color.RGBA{200, 50, 0, 255}), image.Rect(0, 0, 48, 48))
	require.Nil(t, err)

	d := NewDictionary()
	got, err := r.Resolve(d, 3, 7, 250, crop)
	require.Nil(t, err)

	assert.Equal(t, &TileType{Name: "lava", IsWall: true}, got)
	assert.Equal(t, []string{questionName, questionTransition, questionWall}, prompts.asked)
	assert.Contains(t, out.String(), "average color 250")

	// registered at exactly the given signature
	assert.Equal(t, 1, d.Len())
	stored, ok := d.Get(250)
	assert.True(t, ok)
	assert.Equal(t, got, stored)

	// exactly one reference image with the crop bytes
	files, err := ioutil.ReadDir(dir)
	require.Nil(t, err)
	require.Equal(t, 1, len(files))
	assert.Equal(t, "3_7_tile.png", files[0].Name())

	data, err := ioutil.ReadFile(filepath.Join(dir, "3_7_tile.png"))
	require.Nil(t, err)
	assert.Equal(t, crop.Data, data)
}

func TestResolveScaledReference(t *testing.T) {
	dir := t.TempDir()
	r := &Resolver{Prompter: &fakePrompter{answers: []string{"a", "b", "c"}}, Out: ioutil.Discard, Dir: dir, Scale: 4}

	crop, err := CropExtractor{}.Extract(solidImage(48, 48, color.RGBA{1, 2, 3, 255}), image.Rect(0, 0, 48, 48))
	require.Nil(t, err)

	_, err = r.Resolve(NewDictionary(), 0, 0, 6, crop)
	require.Nil(t, err)

	f, err := os.Open(filepath.Join(dir, ReferenceName(0, 0)))
	require.Nil(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 192, 192), img.Bounds())
}

func TestResolveNoAnswer(t *testing.T) {
	r := &Resolver{Prompter: &fakePrompter{answers: []string{"only a name"}}, Out: ioutil.Discard, Dir: t.TempDir()}

	crop, err := CropExtractor{}.Extract(solidImage(4, 4, color.RGBA{1, 2, 3, 255}), image.Rect(0, 0, 4, 4))
	require.Nil(t, err)

	d := NewDictionary()
	_, err = r.Resolve(d, 0, 0, 6, crop)

	assert.Error(t, err)
	assert.Equal(t, 0, d.Len())
}
