package media

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// Lado máximo das imagens da galeria depois do reencode.
const maxEdge = 1280

const quality = 85

// Processor recebe uploads da galeria, reduz para um tamanho razoável
// e regrava como webp no diretório local de mídia. A referência
// devolvida é a URI servida em /media.
type Processor struct {
	dir string
}

func NewProcessor(dir string) (*Processor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Processor{dir: dir}, nil
}

func (p *Processor) Dir() string {
	return p.dir
}

func (p *Processor) Ingest(r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", err
	}

	img := downscale(src)

	name := uuid.NewString() + ".webp"
	f, err := os.Create(filepath.Join(p.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := webp.Encode(f, img, &webp.Options{Quality: quality}); err != nil {
		return "", err
	}

	return "/media/" + name, nil
}

func downscale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
