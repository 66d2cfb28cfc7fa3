package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func iconHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

// openableIconHeader 실제 열 수 있는 multipart 파트를 만든다
func openableIconHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="icon"; filename="%s"`, name)},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["icon"][0]
}

func TestValidateIconUpload(t *testing.T) {
	testCases := []struct {
		name   string
		file   *multipart.FileHeader
		reason string
	}{
		{"파일 없음", nil, "NO_FILE"},
		{"2MB 초과", iconHeader("big.png", "image/png", domain.MaxIconFileSize+1), "FILE_TOO_LARGE"},
		{"허용되지 않는 형식", iconHeader("notes.txt", "text/plain", 1024), "INVALID_FILE_TYPE"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateIconUpload(tc.file)

			assert.True(t, common.IsValidation(err))
			var ve *common.ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.reason, ve.Reason)
		})
	}

	t.Run("한도 이내의 PNG는 통과한다", func(t *testing.T) {
		assert.NoError(t, ValidateIconUpload(iconHeader("ok.png", "image/png", domain.MaxIconFileSize)))
	})
}

func TestIconAssetService_Upload(t *testing.T) {
	t.Run("유효한 PNG는 파일을 저장하고 행을 하나 만든다", func(t *testing.T) {
		dir := t.TempDir()
		repo := new(MockIconAssetRepository)
		svc := NewIconAssetService(repo, dir, "http://localhost:3001")

		repo.On("Create", mock.AnythingOfType("*domain.IconAsset")).Return(nil)

		resp, err := svc.Upload(openableIconHeader(t, "logo.png", "image/png", bytes.Repeat([]byte{0x89}, 1024)))

		assert.NoError(t, err)
		assert.Equal(t, "logo.png", resp.Filename)
		assert.NotEqual(t, "logo.png", resp.StoredName)
		assert.Equal(t, "image/png", resp.MimeType)
		assert.Equal(t, int64(1024), resp.Size)
		assert.Contains(t, resp.URL, "http://localhost:3001/uploads/icons/")
		assert.FileExists(t, filepath.Join(dir, "icons", resp.StoredName))
		repo.AssertNumberOfCalls(t, "Create", 1)

		// 응답의 filename은 업로드한 원본 이름 그대로 내려가야 한다
		wire, marshalErr := json.Marshal(resp)
		assert.NoError(t, marshalErr)
		assert.Contains(t, string(wire), `"filename":"logo.png"`)
	})

	t.Run("DB 저장 실패 시 쓴 파일을 지운다", func(t *testing.T) {
		dir := t.TempDir()
		repo := new(MockIconAssetRepository)
		svc := NewIconAssetService(repo, dir, "http://localhost:3001")

		repo.On("Create", mock.AnythingOfType("*domain.IconAsset")).Return(errors.New("db down"))

		_, err := svc.Upload(openableIconHeader(t, "logo.png", "image/png", []byte("png")))

		assert.Error(t, err)
		entries, readErr := os.ReadDir(filepath.Join(dir, "icons"))
		assert.NoError(t, readErr)
		assert.Empty(t, entries)
	})
}

func TestIconAssetService_Delete(t *testing.T) {
	t.Run("참조 중이면 사용처 개수를 담아 거절한다", func(t *testing.T) {
		repo := new(MockIconAssetRepository)
		svc := NewIconAssetService(repo, t.TempDir(), "http://localhost:3001")

		repo.On("FindByID", "i1").Return(&domain.IconAsset{ID: "i1"}, nil)
		repo.On("CountReferences", "i1").Return(domain.IconAssetCounts{Platforms: 1, ServiceSlots: 2}, nil)

		err := svc.Delete("i1")

		assert.True(t, common.IsConflict(err))
		assert.EqualError(t, err, "아이콘을 삭제할 수 없습니다. 3개의 항목에서 사용 중입니다.")
		repo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("DB 행을 지우고 디스크 파일도 제거한다", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "icons", "a.png")
		assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		assert.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

		repo := new(MockIconAssetRepository)
		svc := NewIconAssetService(repo, dir, "http://localhost:3001")

		repo.On("FindByID", "i1").Return(&domain.IconAsset{ID: "i1", Path: path}, nil)
		repo.On("CountReferences", "i1").Return(domain.IconAssetCounts{}, nil)
		repo.On("Delete", "i1").Return(nil)

		assert.NoError(t, svc.Delete("i1"))
		assert.NoFileExists(t, path)
		repo.AssertExpectations(t)
	})

	t.Run("파일이 이미 없어도 삭제는 성공한다", func(t *testing.T) {
		repo := new(MockIconAssetRepository)
		svc := NewIconAssetService(repo, t.TempDir(), "http://localhost:3001")

		repo.On("FindByID", "i1").Return(&domain.IconAsset{ID: "i1", Path: "/nonexistent/a.png"}, nil)
		repo.On("CountReferences", "i1").Return(domain.IconAssetCounts{}, nil)
		repo.On("Delete", "i1").Return(nil)

		assert.NoError(t, svc.Delete("i1"))
	})
}
