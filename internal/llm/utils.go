package llm

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// maxImageMB caps a single rendered page attachment.
const maxImageMB = 20

// ReadImageAsDataURL loads a rendered page image and encodes it as a data URL
// for a multimodal message part.
func ReadImageAsDataURL(path string) (string, error) {
	if st, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	} else if st.Size() > maxImageMB*1024*1024 {
		return "", fmt.Errorf("image %s exceeds %dMB", filepath.Base(path), maxImageMB)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
