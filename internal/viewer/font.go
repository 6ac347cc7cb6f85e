package viewer

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const labelFontSize = 18.0

var labelFace *text.GoTextFace

func init() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("viewer: failed to load label font: %v", err)
		return
	}
	labelFace = &text.GoTextFace{Source: source, Size: labelFontSize}
}

// LabelFace returns the font face the viewer draws its day counter
// and status text with.
func LabelFace() *text.GoTextFace {
	return labelFace
}
