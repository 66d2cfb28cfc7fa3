package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/neulketing/instaup-backend/internal/common"
	"github.com/neulketing/instaup-backend/internal/domain"
	"github.com/neulketing/instaup-backend/internal/repository"
	"github.com/neulketing/instaup-backend/pkg/logger"
	"gorm.io/gorm"
)

// IconAssetService defines the business logic for icon uploads
type IconAssetService interface {
	List(filter domain.IconAssetFilter) (*domain.IconAssetListResult, error)
	Get(id string) (*domain.IconAssetResponse, error)
	Upload(file *multipart.FileHeader) (*domain.IconAssetResponse, error)
	Delete(id string) error
}

type iconAssetService struct {
	repo      repository.IconAssetRepository
	uploadDir string
	baseURL   string
}

// NewIconAssetService creates a new IconAssetService.
// uploadDir 아래 icons/ 디렉터리에 원본 파일을 저장한다.
func NewIconAssetService(repo repository.IconAssetRepository, uploadDir, baseURL string) IconAssetService {
	return &iconAssetService{repo: repo, uploadDir: uploadDir, baseURL: baseURL}
}

// List retrieves icon assets with reference counts and pagination
func (s *iconAssetService) List(filter domain.IconAssetFilter) (*domain.IconAssetListResult, error) {
	filter.Page, filter.Limit = normalizePaging(filter.Page, filter.Limit)

	assets, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}
	counts, err := s.repo.CountReferencesBatch(ids)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.IconAssetResponse, len(assets))
	for i, a := range assets {
		responses[i] = a.ToResponse(counts[a.ID])
	}

	return &domain.IconAssetListResult{
		Icons:      responses,
		Pagination: common.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Get retrieves an icon asset by ID
func (s *iconAssetService) Get(id string) (*domain.IconAssetResponse, error) {
	asset, err := s.findAsset(id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountReferences(id)
	if err != nil {
		return nil, err
	}

	resp := asset.ToResponse(counts)
	return &resp, nil
}

// Upload validates, stores and registers a single icon file.
// DB 저장에 실패하면 이미 쓴 파일을 지워 고아 파일을 남기지 않는다.
func (s *iconAssetService) Upload(file *multipart.FileHeader) (*domain.IconAssetResponse, error) {
	if err := ValidateIconUpload(file); err != nil {
		return nil, err
	}

	storedName := domain.StoredIconFilename(file.Filename, time.Now().UnixMilli(), randomToken())
	path := filepath.Join(s.uploadDir, "icons", storedName)

	if err := saveUploadedFile(file, path); err != nil {
		return nil, common.NewValidationReason("파일 업로드에 실패했습니다.", "UPLOAD_ERROR")
	}

	asset := &domain.IconAsset{
		ID:         uuid.NewString(),
		Filename:   file.Filename,
		StoredName: storedName,
		MimeType:   file.Header.Get("Content-Type"),
		Size:       file.Size,
		URL:        domain.IconURL(s.baseURL, storedName),
		Path:       path,
	}

	if err := s.repo.Create(asset); err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.GetLogger().Warn().Err(rmErr).Str("path", path).
				Msg("업로드 실패 후 파일 정리에 실패했습니다")
		}
		return nil, err
	}

	resp := asset.ToResponse(domain.IconAssetCounts{})
	return &resp, nil
}

// Delete removes an icon asset unless other rows still reference it.
// DB 행을 먼저 지우고 디스크 파일 삭제는 실패해도 오류로 보지 않는다.
func (s *iconAssetService) Delete(id string) error {
	asset, err := s.findAsset(id)
	if err != nil {
		return err
	}

	counts, err := s.repo.CountReferences(id)
	if err != nil {
		return err
	}
	if total := counts.Total(); total > 0 {
		return common.NewDependencyConflict(
			fmt.Sprintf("아이콘을 삭제할 수 없습니다. %d개의 항목에서 사용 중입니다.", total), total)
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	if asset.Path != "" {
		if rmErr := os.Remove(asset.Path); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.GetLogger().Warn().Err(rmErr).Str("path", asset.Path).
				Msg("아이콘 파일 삭제에 실패했습니다")
		}
	}

	return nil
}

// ValidateIconUpload checks the multipart header against the upload limits
func ValidateIconUpload(file *multipart.FileHeader) error {
	if file == nil {
		return common.NewValidationReason("업로드할 파일이 없습니다.", "NO_FILE")
	}
	if file.Size > domain.MaxIconFileSize {
		return common.NewValidationReason("파일 크기는 2MB를 초과할 수 없습니다.", "FILE_TOO_LARGE")
	}
	if !domain.AllowedIconMimeTypes[file.Header.Get("Content-Type")] {
		return common.NewValidationReason("지원하지 않는 파일 형식입니다.", "INVALID_FILE_TYPE")
	}
	return nil
}

func saveUploadedFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

func randomToken() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "000000"
	}
	return hex.EncodeToString(b)
}

func (s *iconAssetService) findAsset(id string) (*domain.IconAsset, error) {
	asset, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFound("아이콘을 찾을 수 없습니다.")
		}
		return nil, err
	}
	return asset, nil
}
