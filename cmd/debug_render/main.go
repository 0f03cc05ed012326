package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"thumbnail-manager/feature/thumbnail"

	"github.com/disintegration/imaging"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <image> [out-dir]", filepath.Base(os.Args[0]))
	}
	src := os.Args[1]
	outDir := "."
	if len(os.Args) > 2 {
		outDir = os.Args[2]
	}

	data, err := os.ReadFile(src)
	if err != nil {
		log.Fatal(err)
	}

	img, err := thumbnail.Decode(data, thumbnail.DefaultMaxPixels)
	if err != nil {
		log.Fatal(err)
	}
	b := img.Bounds()
	fmt.Printf("=== %s: %dx%d ===\n", src, b.Dx(), b.Dy())

	// Without the WebP encoder, fall back to PNG so the crop can still be inspected
	enc, probeErr := thumbnail.ProbeLocal()
	if probeErr != nil {
		fmt.Printf("WebP encoder unavailable (%v), writing PNG\n", probeErr)
	}
	renderer := thumbnail.NewRenderer(enc, thumbnail.DefaultQuality)

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	for _, v := range thumbnail.Variants {
		g := thumbnail.CoverGeometry(b.Dx(), b.Dy(), v.Width, v.Height)
		fmt.Printf("%-10s scale %.4f, scaled %dx%d, crop %v\n", v.Name, g.Scale, g.ScaledWidth, g.ScaledHeight, g.Crop)

		if probeErr != nil {
			out, err := thumbnail.CoverFit(img, v.Width, v.Height)
			if err != nil {
				log.Fatal(err)
			}
			dst := filepath.Join(outDir, fmt.Sprintf("%s-%s.png", base, v.Name))
			if err := imaging.Save(out, dst); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("  wrote %s\n", dst)
			continue
		}

		payload, err := renderer.Render(img, v.Width, v.Height)
		if err != nil {
			log.Fatal(err)
		}
		dst := filepath.Join(outDir, fmt.Sprintf("%s-%s%s", base, v.Name, thumbnail.DerivativeExt))
		if err := os.WriteFile(dst, payload, 0644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  wrote %s (%d bytes)\n", dst, len(payload))
	}
}
