package textfit

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	// BasicFont is the name under which basicfont.Face7x13 is always registered.
	BasicFont = "basic"

	// DefaultFontSize is used for scalable fonts when Params.Size is zero.
	DefaultFontSize = 14

	// DefaultDPI is the resolution scalable faces are created at.
	DefaultDPI = 72
)

type faceKey struct {
	name string
	size float64
}

// FaceMeasurer measures text in pixels with golang.org/x/image font faces.
//
// Fonts are registered by name: fixed faces (WithFace) ignore Params.Size,
// scalable OpenType fonts (WithOpenType) get one face per requested size,
// created on first use and cached. Loading and parsing font files is left to
// the caller.
//
// FaceMeasurer is safe for concurrent use.
type FaceMeasurer struct {
	mu sync.Mutex

	fixed    map[string]font.Face
	scalable map[string]*opentype.Font
	faces    map[faceKey]font.Face

	dpi     float64
	hinting font.Hinting
}

// FaceOption configures a FaceMeasurer.
type FaceOption func(*FaceMeasurer)

// WithFace registers a fixed-size face under name.
func WithFace(name string, face font.Face) FaceOption {
	return func(m *FaceMeasurer) {
		m.fixed[name] = face
	}
}

// WithOpenType registers a scalable font under name.
func WithOpenType(name string, f *opentype.Font) FaceOption {
	return func(m *FaceMeasurer) {
		m.scalable[name] = f
	}
}

// WithDPI sets the resolution used for scalable faces. Default 72.
func WithDPI(dpi float64) FaceOption {
	return func(m *FaceMeasurer) {
		if dpi > 0 {
			m.dpi = dpi
		}
	}
}

// WithHinting sets the hinting used for scalable faces. Default font.HintingFull.
func WithHinting(h font.Hinting) FaceOption {
	return func(m *FaceMeasurer) {
		m.hinting = h
	}
}

// NewFaceMeasurer creates a FaceMeasurer with BasicFont registered.
func NewFaceMeasurer(opts ...FaceOption) *FaceMeasurer {
	m := &FaceMeasurer{
		fixed:    map[string]font.Face{BasicFont: basicfont.Face7x13},
		scalable: make(map[string]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
		dpi:      DefaultDPI,
		hinting:  font.HintingFull,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Measure returns the advance width of text and the line height of the face,
// both rounded up to whole pixels.
func (m *FaceMeasurer) Measure(text string, p Params) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	face, err := m.face(p)
	if err != nil {
		return 0, 0, err
	}

	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()
	return width, height, nil
}

// face returns the face for p. m.mu must be held.
func (m *FaceMeasurer) face(p Params) (font.Face, error) {
	if face, ok := m.fixed[p.Font]; ok {
		return face, nil
	}

	f, ok := m.scalable[p.Font]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, p.Font)
	}

	size := p.Size
	if size == 0 {
		size = DefaultFontSize
	}

	key := faceKey{name: p.Font, size: size}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     m.dpi,
		Hinting: m.hinting,
	})
	if err != nil {
		return nil, err
	}

	m.faces[key] = face
	return face, nil
}
