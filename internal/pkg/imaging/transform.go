package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const (
	// MaxWidth é a largura máxima das imagens publicadas.
	MaxWidth    = 1920
	JPEGQuality = 80
)

// Result é a imagem já codificada em JPEG.
type Result struct {
	Data   []byte
	Width  int
	Height int
}

// Transform decodifica a imagem aplicando a orientação EXIF, reduz para MaxWidth
// quando mais larga (nunca amplia) e recodifica em JPEG qualidade 80.
func Transform(data []byte) (Result, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode image: %w", err)
	}

	img = fitWidth(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return Result{}, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return Result{Data: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

func fitWidth(img image.Image) image.Image {
	if img.Bounds().Dx() <= MaxWidth {
		return img
	}
	// altura 0 mantém a proporção
	return imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
}
