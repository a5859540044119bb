package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// saveUploadedImage writes the optional uploaded file under field into dir
// and returns the generated filename, "{field}-{unixMillis}.{original}".
// No file attached is not an error: the caller gets "" and proceeds without
// touching the image field. Two uploads in the same millisecond overwrite
// each other.
func saveUploadedImage(c *gin.Context, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	name := fmt.Sprintf("%s-%d.%s", field, time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("save upload %s: %w", name, err)
	}
	return name, nil
}
