package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// exportSite writes the static rendition of the site into out: one
// index.html per page, the placeholder images the pages reference, and
// copies of the images and static directories. Links are root-absolute,
// prefixed with base when the site is hosted under a sub-path. It returns
// the number of files written.
func exportSite(r *renderer, cfg *Config, out, base string, progress io.Writer) (int, error) {
	r = r.forExport(base)

	placeholders := placeholderFiles(r)
	bar := progressbar.NewOptions(len(Pages())+len(placeholders)+2,
		progressbar.OptionSetDescription("Exporting site"),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	written := 0
	for _, p := range Pages() {
		bar.Describe(p.Title())
		var buf bytes.Buffer
		if err := r.execute(&buf, "page.html", r.page(p)); err != nil {
			return written, err
		}
		if err := writeFile(filepath.Join(out, filepath.FromSlash(p.File())), buf.Bytes()); err != nil {
			return written, err
		}
		written++
		_ = bar.Add(1)
	}

	for _, name := range placeholders {
		w, h, _ := parsePlaceholderSize(name)
		if err := writeFile(filepath.Join(out, "placeholder", name), []byte(placeholderSVG(w, h, ""))); err != nil {
			return written, err
		}
		written++
		_ = bar.Add(1)
	}

	for _, dir := range []struct{ src, dst string }{
		{cfg.Images, "images"},
		{cfg.Static, "static"},
	} {
		bar.Describe(dir.dst)
		n, err := copyTree(dir.src, filepath.Join(out, dir.dst))
		if err != nil {
			return written, err
		}
		written += n
		_ = bar.Add(1)
	}

	_ = bar.Finish()
	return written, nil
}

// placeholderFiles lists the placeholder SVG names referenced by the
// project pages, e.g. "500x300.svg".
func placeholderFiles(r *renderer) []string {
	seen := map[string]bool{}
	for _, p := range r.projects {
		for _, img := range p.Images {
			if strings.HasPrefix(strings.TrimPrefix(img.URL, r.base), "/placeholder/") {
				seen[path.Base(img.URL)] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(name), err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// copyTree copies regular files from src into dst. A missing src is not an
// error; there is simply nothing to copy.
func copyTree(src, dst string) (int, error) {
	if src == "" {
		return 0, nil
	}
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		if err := writeFile(filepath.Join(dst, rel), data); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}
