package photos_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dmorales2498/Entes-Stats/internal/photos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImagePNG(t *testing.T) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestSaveReencodesAsJPEG(t *testing.T) {
	dir := t.TempDir()
	store, err := photos.New(dir)
	require.NoError(t, err)

	path, err := store.Save(3, "Andrés Iniesta", testImagePNG(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "3_andrés_iniesta.jpg"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = jpeg.Decode(f)
	assert.NoError(t, err, "stored photo should be a decodable JPEG")
}

func TestSaveReplacesExistingPhoto(t *testing.T) {
	dir := t.TempDir()
	store, err := photos.New(dir)
	require.NoError(t, err)

	first, err := store.Save(1, "Leo", testImagePNG(t))
	require.NoError(t, err)
	second, err := store.Save(1, "Leo", testImagePNG(t))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSaveRejectsGarbage(t *testing.T) {
	store, err := photos.New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(1, "Leo", bytes.NewBufferString("not an image"))
	assert.Error(t, err)
}

func TestSaveWithUnusableName(t *testing.T) {
	dir := t.TempDir()
	store, err := photos.New(dir)
	require.NoError(t, err)

	path, err := store.Save(9, "!!!", testImagePNG(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "9_player.jpg"), path)
}
