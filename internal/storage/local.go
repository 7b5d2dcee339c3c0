package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store - интерфейс файлового хранилища загрузок
type Store interface {
	SaveIncidentImage(filename string, data io.Reader) (string, error)
	SaveProfilePhoto(userID uuid.UUID, filename string, data io.Reader) (string, error)
}

// LocalStore складывает загрузки на локальный диск и отдает публичные
// пути. Файл адресуется только путем, без хэширования содержимого.
type LocalStore struct {
	baseDir    string
	publicBase string
}

func NewLocalStore(baseDir, publicBase string) (*LocalStore, error) {
	for _, sub := range []string{"incidents", "profiles"} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload dir: %w", err)
		}
	}
	return &LocalStore{
		baseDir:    baseDir,
		publicBase: strings.TrimSuffix(publicBase, "/"),
	}, nil
}

// SaveIncidentImage сохраняет фото обращения под ключом
// incidents/{timestamp}-{random} и возвращает публичный URL
func (s *LocalStore) SaveIncidentImage(filename string, data io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(), safeExt(filename))
	return s.save(filepath.Join("incidents", name), data)
}

// SaveProfilePhoto сохраняет фото профиля под ключом profiles/{userId}.
// Повторная загрузка перезаписывает предыдущее фото.
func (s *LocalStore) SaveProfilePhoto(userID uuid.UUID, filename string, data io.Reader) (string, error) {
	name := userID.String() + safeExt(filename)
	return s.save(filepath.Join("profiles", name), data)
}

func (s *LocalStore) save(relPath string, data io.Reader) (string, error) {
	dst, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.publicBase + "/" + filepath.ToSlash(relPath), nil
}

// safeExt возвращает расширение исходного файла, отбрасывая все,
// что не похоже на короткий суффикс
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 5 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
