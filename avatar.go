package diary

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

// maxAvatarWidth is the widest avatar served; the header shows it at 40px,
// so this leaves room for high-density screens.
const maxAvatarWidth = 256

// avatarCache holds the resized avatar until the source file changes.
type avatarCache struct {
	mu      sync.Mutex
	modTime time.Time
	data    []byte
}

// localAvatar reports whether the avatar is a site-relative path this server
// should answer for.
func localAvatar(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/public/")
}

// resizeImage decodes src and re-encodes it as PNG no wider than maxWidth.
func resizeImage(src io.Reader, maxWidth int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxWidth {
		newH := max(h*maxWidth/w, 1)
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// avatarBytes returns the resized avatar, reprocessing only when the file
// on disk is newer than the cached copy.
func (a *App) avatarBytes() ([]byte, error) {
	path := filepath.Join(a.Config.StaticDir, filepath.FromSlash(strings.TrimPrefix(a.Site.Avatar, "/")))
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	a.avatar.mu.Lock()
	defer a.avatar.mu.Unlock()
	if a.avatar.data != nil && a.avatar.modTime.Equal(info.ModTime()) {
		return a.avatar.data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := resizeImage(f, maxAvatarWidth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.avatar.data = data
	a.avatar.modTime = info.ModTime()
	return data, nil
}

func (a *App) handleAvatar(c echo.Context) error {
	data, err := a.avatarBytes()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.ErrNotFound
		}
		return err
	}
	return c.Blob(http.StatusOK, "image/png", data)
}
