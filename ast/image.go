package ast

// Image is a block-level picture occupying its own paragraph slot,
// as opposed to InlineImage which is nested inside a run.
type Image struct {
	MediaKey  string
	Extension string
	WidthEMU  int
	HeightEMU int
	PixelW    int
	PixelH    int
	AltText   string
	Alignment Alignment
}

func NewImage(mediaKey, extension string, widthEMU, heightEMU int) Image {
	return Image{MediaKey: mediaKey, Extension: extension, WidthEMU: widthEMU, HeightEMU: heightEMU}
}

func (i Image) WithPixelSize(w, h int) Image     { i.PixelW = w; i.PixelH = h; return i }
func (i Image) WithAltText(s string) Image       { i.AltText = s; return i }
func (i Image) WithAlignment(a Alignment) Image  { i.Alignment = a; return i }

func (Image) Kind() BlockKind         { return BlockImage }
func (i *Image) Visit(v Visitor) error { return v.VisitImage(i) }
func (Image) block()                  {}
