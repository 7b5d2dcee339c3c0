package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveIncidentImage(t *testing.T) {
	// Подготовка
	baseDir := t.TempDir()
	store, err := NewLocalStore(baseDir, "/uploads/")
	require.NoError(t, err)

	// Действие
	url, err := store.SaveIncidentImage("photo.JPG", strings.NewReader("fake-jpeg-bytes"))

	// Проверки: публичный путь без двойного слэша, расширение в нижнем регистре
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/incidents/"), "got %q", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "got %q", url)

	data, err := os.ReadFile(filepath.Join(baseDir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg-bytes", string(data))
}

func TestSaveIncidentImage_UniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := store.SaveIncidentImage("photo.png", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.SaveIncidentImage("photo.png", strings.NewReader("two"))
	require.NoError(t, err)

	// Два файла с одинаковым исходным именем не затирают друг друга
	assert.NotEqual(t, first, second)
}

func TestSaveProfilePhoto_Overwrites(t *testing.T) {
	// Подготовка
	baseDir := t.TempDir()
	store, err := NewLocalStore(baseDir, "/uploads")
	require.NoError(t, err)
	userID := uuid.New()

	// Действие: повторная загрузка под тем же пользователем
	first, err := store.SaveProfilePhoto(userID, "old.png", strings.NewReader("old-bytes"))
	require.NoError(t, err)
	second, err := store.SaveProfilePhoto(userID, "new.png", strings.NewReader("new-bytes"))
	require.NoError(t, err)

	// Проверки: ключ выводится из userID, новое фото перезаписывает старое
	assert.Equal(t, "/uploads/profiles/"+userID.String()+".png", first)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(filepath.Join(baseDir, "profiles", userID.String()+".png"))
	require.NoError(t, err)
	assert.Equal(t, "new-bytes", string(data))
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".jpg", safeExt("photo.jpg"))
	assert.Equal(t, ".png", safeExt("PHOTO.PNG"))
	assert.Equal(t, "", safeExt("noext"))
	// Подозрительно длинный "суффикс" отбрасывается
	assert.Equal(t, "", safeExt("archive.backup"))
}
