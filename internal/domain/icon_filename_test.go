package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoredIconFilename(t *testing.T) {
	testCases := []struct {
		name     string
		original string
		expected string
	}{
		{"영숫자 이름", "icon.png", "1700000000000-abc123-icon.png"},
		{"공백과 특수문자 치환", "my icon (1).png", "1700000000000-abc123-my_icon__1_.png"},
		{"한글 이름 치환", "인스타 아이콘.jpg", "1700000000000-abc123-_______.jpg"},
		{"확장자 소문자화", "LOGO.PNG", "1700000000000-abc123-LOGO.png"},
		{"확장자 없음", "favicon", "1700000000000-abc123-favicon"},
		{"경로 성분 제거", "../../etc/passwd", "1700000000000-abc123-passwd"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StoredIconFilename(tc.original, 1700000000000, "abc123"))
		})
	}
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3001/uploads/icons/a.png", IconURL("http://localhost:3001", "a.png"))
	assert.Equal(t, "http://localhost:3001/uploads/icons/a.png", IconURL("http://localhost:3001/", "a.png"))
}
