// internal/domain/upload/upload_test.go
package upload

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
)

func testService() *Service {
	return NewService(nil, &config.Config{
		Storage: config.StorageConfig{
			LocalPath:     "/tmp/uploads",
			PublicBaseURL: "http://localhost:8080/uploads/",
		},
		Upload: config.UploadConfig{
			MaxSize:           1 << 20,
			AllowedExtensions: []string{"jpg", "jpeg", "png", "webp"},
		},
	})
}

func TestValidateImageFileAcceptsAllowedExtensions(t *testing.T) {
	s := testService()

	for _, name := range []string{"logo.png", "photo.JPG", "banner.webp"} {
		err := s.validateImageFile(&multipart.FileHeader{Filename: name, Size: 1024})
		require.NoError(t, err, name)
	}
}

func TestValidateImageFileRejectsDisallowedExtension(t *testing.T) {
	s := testService()

	err := s.validateImageFile(&multipart.FileHeader{Filename: "script.svg", Size: 1024})
	require.Error(t, err)
}

func TestValidateImageFileRejectsOversizedFile(t *testing.T) {
	s := testService()

	err := s.validateImageFile(&multipart.FileHeader{Filename: "big.png", Size: 2 << 20})
	require.Error(t, err)
}

func TestGenerateUniqueFilenameKeepsExtension(t *testing.T) {
	s := testService()

	first := s.generateUniqueFilename("Foto Do Prato.PNG")
	second := s.generateUniqueFilename("Foto Do Prato.PNG")

	require.NotEqual(t, first, second)
	require.Regexp(t, `\.png$`, first)
}

func TestGetFileURLJoinsCleanly(t *testing.T) {
	s := testService()

	url := s.getFileURL("products/abc.png")
	require.Equal(t, "http://localhost:8080/uploads/products/abc.png", url)
}
