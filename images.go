package main

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	projectImageWidth  = 500
	projectImageHeight = 300

	placeholderMin = 16
	placeholderMax = 2000
)

// imageResolver maps image references from the content to URLs. Missing
// local files never break a page: they resolve to a generated placeholder.
type imageResolver struct {
	dir    string
	prefix string
}

func newImageResolver(dir string) imageResolver {
	return imageResolver{dir: dir, prefix: "/images/"}
}

// Resolve returns the URL for src, or a w×h placeholder when src is empty,
// unsafe, or not present in the images directory.
func (r imageResolver) Resolve(src string, w, h int) string {
	if isRemoteImage(src) {
		return src
	}
	if name, ok := r.local(src); ok {
		return r.prefix + name
	}
	return placeholderURL(w, h)
}

func (r imageResolver) local(src string) (string, bool) {
	if src == "" || r.dir == "" {
		return "", false
	}
	name := path.Clean("/" + filepath.ToSlash(src))[1:]
	if name == "" || name != filepath.ToSlash(src) {
		return "", false
	}
	info, err := os.Stat(filepath.Join(r.dir, filepath.FromSlash(name)))
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return name, true
}

type avatar struct {
	URL   string
	Glyph string
}

// Avatar returns the profile photo, or the owner's monogram when the photo is
// missing.
func (r imageResolver) Avatar(o Owner) avatar {
	if isRemoteImage(o.Photo) {
		return avatar{URL: o.Photo}
	}
	if name, ok := r.local(o.Photo); ok {
		return avatar{URL: r.prefix + name}
	}
	return avatar{Glyph: o.Monogram()}
}

func isRemoteImage(src string) bool {
	return strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "http://")
}

func placeholderURL(w, h int) string {
	return fmt.Sprintf("/placeholder/%dx%d.svg", w, h)
}

// parsePlaceholderSize parses "500x300.svg" into clamped dimensions.
func parsePlaceholderSize(size string) (int, int, bool) {
	dims, ok := strings.CutSuffix(size, ".svg")
	if !ok {
		return 0, 0, false
	}
	ws, hs, ok := strings.Cut(dims, "x")
	if !ok {
		return 0, 0, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, false
	}
	return clamp(w, placeholderMin, placeholderMax), clamp(h, placeholderMin, placeholderMax), true
}

func placeholderSVG(w, h int, label string) string {
	if label == "" {
		label = fmt.Sprintf("%d × %d", w, h)
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#e2e8f0"/>`+
		`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="%d" fill="#64748b">%s</text>`+
		`</svg>`, w, h, w, h, clamp(h/10, 10, 48), html.EscapeString(label))
}

// servePlaceholder handles GET /placeholder/:size
func servePlaceholder(c *gin.Context) {
	w, h, ok := parsePlaceholderSize(c.Param("size"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must look like 500x300.svg"})
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(placeholderSVG(w, h, c.Query("label"))))
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
