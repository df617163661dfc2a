package tileclass

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// solidImage returns a w x h image filled with a single colour
func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fill paints the rectangle r of img
func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// fakePrompter answers questions from a list & records what was asked
type fakePrompter struct {
	answers []string
	asked   []string
}

func (f *fakePrompter) Ask(question string) (string, error) {
	f.asked = append(f.asked, question)
	if len(f.answers) == 0 {
		return "", io.EOF
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a, nil
}

// failingExtractor fails for any area starting at one of the given points
type failingExtractor struct {
	failAt map[image.Point]bool
}

func (f *failingExtractor) Extract(src image.Image, r image.Rectangle) (*Crop, error) {
	if f.failAt[r.Min] {
		return nil, fmt.Errorf("forced failure at %v", r.Min)
	}
	return CropExtractor{}.Extract(src, r)
}

// memStore keeps the dictionary in memory, optionally failing saves
type memStore struct {
	saved     *Dictionary
	saves     int
	failSaves int // number of saves that fail before they start working
}

func (m *memStore) Load() (*Dictionary, error) {
	if m.saved == nil {
		return nil, ErrNoDictionary
	}
	return m.saved, nil
}

func (m *memStore) Save(d *Dictionary) error {
	m.saves++
	if m.failSaves > 0 {
		m.failSaves--
		return fmt.Errorf("disk full")
	}
	m.saved = d
	return nil
}
