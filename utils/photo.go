package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const uploadDir = "uploads"

// EnsureUploadDir creates the local uploads directory if it doesn't exist.
func EnsureUploadDir() error {
	return os.MkdirAll(filepath.Join(uploadDir, "mission-photos"), os.ModePerm)
}

// StoreMissionPhoto persists a completion photo and returns the URL to
// record as evidence. Goes to R2 when configured, local disk otherwise.
// Object keys are random so user filenames never collide or leak.
func StoreMissionPhoto(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	key := fmt.Sprintf("mission-photos/%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))

	if R2Enabled() {
		return UploadFileToR2(ctx, fileHeader, key)
	}

	destPath := filepath.Join(uploadDir, key)
	if err := saveFile(fileHeader, destPath); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(destPath), nil
}

func saveFile(fileHeader *multipart.FileHeader, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	return err
}
