package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"kbicons/icon"
	"kbicons/log"
	"kbicons/palette"
)

// Sizes are the icon sizes generated for every theme.
var Sizes = []int{16, 48, 128}

type Config struct {
	OutDir string
	Themes []palette.Theme
	Jobs   int
}

type job struct {
	size  int
	theme palette.Theme
	path  string
}

// jobs lists every icon in output order: all sizes of the first theme, then
// all sizes of the next.
func (c Config) jobs() []job {
	var out []job
	for _, th := range c.Themes {
		for _, size := range Sizes {
			out = append(out, job{
				size:  size,
				theme: th,
				path:  filepath.Join(c.OutDir, icon.FileName(size, th)),
			})
		}
	}
	return out
}

// Generate renders every configured icon and writes it under cfg.OutDir.
// Rendering runs on up to cfg.Jobs goroutines; files are written and
// reported in job order. It returns the written paths.
func Generate(cfg Config, rep *reporter) ([]string, error) {
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	jobs := cfg.jobs()
	imgs := make([]*image.RGBA, len(jobs))

	var g errgroup.Group
	g.SetLimit(max(cfg.Jobs, 1))
	for i, j := range jobs {
		g.Go(func() error {
			start := time.Now()
			img, err := icon.Compose(j.size, j.theme)
			if err != nil {
				return fmt.Errorf("render %s: %w", j.path, err)
			}
			imgs[i] = img
			log.IconRendered(log.RenderMetrics{
				Theme:    j.theme.Name,
				Size:     j.size,
				Tier:     icon.TierFor(j.size).String(),
				RenderMs: float64(time.Since(start).Microseconds()) / 1000,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(jobs))
	for i, j := range jobs {
		if err := writeIcon(j.path, imgs[i]); err != nil {
			return paths, err
		}
		paths = append(paths, j.path)
		if rep != nil {
			rep.Created(j.path, j.size)
		}
	}
	return paths, nil
}

func writeIcon(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := icon.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.IconWritten(path, buf.Len())
	return nil
}
