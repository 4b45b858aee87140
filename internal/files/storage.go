package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"grafica-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload is one artwork file received with an order submission.
type Upload struct {
	Name   string
	Reader io.Reader
}

// Storage stores uploaded artwork and returns the references the order
// keeps. The order core never touches file bytes itself.
type Storage interface {
	Store(ctx context.Context, uploads []Upload) ([]string, error)
}

type diskStorage struct {
	dir string
}

func NewDiskStorage(dir string) Storage {
	return &diskStorage{dir: dir}
}

func (s *diskStorage) Store(ctx context.Context, uploads []Upload) ([]string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "files"),
		zap.Int("count", len(uploads)),
	)

	// Group by month so a busy shop does not end up with one huge dir.
	subdir := filepath.Join(s.dir, time.Now().UTC().Format("2006-01"))
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	var paths []string
	for _, up := range uploads {
		name := uuid.New().String() + filepath.Ext(up.Name)
		dest := filepath.Join(subdir, name)

		if err := writeFile(dest, up.Reader); err != nil {
			log.Error("failed to store upload",
				zap.String("name", up.Name),
				zap.Error(err),
			)
			return nil, err
		}
		paths = append(paths, dest)
	}

	log.Debug("uploads stored", zap.Strings("paths", paths))
	return paths, nil
}

func writeFile(dest string, r io.Reader) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
