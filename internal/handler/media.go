package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go-product-catalog/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var ErrUnsupportedImage = errors.New("unsupported image type")

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// MediaStore keeps uploaded files under a local media root that is also
// served statically.
type MediaStore struct {
	Root string
}

// SaveProductImage stores the upload as <root>/product_images/<uuid><ext> and
// returns the path relative to the media root.
func (m *MediaStore) SaveProductImage(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}

	dir := filepath.Join(m.Root, model.ImageUploadDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return model.ImagePath(name), nil
}

// Remove deletes a stored file. Missing files are ignored.
func (m *MediaStore) Remove(relative string) error {
	err := os.Remove(filepath.Join(m.Root, filepath.FromSlash(relative)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
