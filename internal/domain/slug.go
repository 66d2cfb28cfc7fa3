package domain

import "strings"

// Slugify derives a URL-safe identifier from a display name.
// 소문자 변환 후 [한글 a-z 0-9] 이외의 문자는 '-'로 치환,
// 연속 '-'는 하나로, 앞뒤 '-'는 제거한다.
// 이미 유효한 슬러그에 대해서는 멱등이다.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r >= '가' && r <= '힣':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
