package migration

import (
	"errors"

	"github.com/google/uuid"
	"github.com/neulketing/instaup-backend/internal/domain"
	"gorm.io/gorm"
)

// Seed inserts the initial catalog data.
// 슬러그 기준 upsert라 여러 번 실행해도 중복이 생기지 않는다.
func Seed(db *gorm.DB) error {
	platformIDs, err := seedPlatforms(db)
	if err != nil {
		return err
	}

	categoryIDs, err := seedCategories(db, platformIDs)
	if err != nil {
		return err
	}

	return seedServiceSlots(db, platformIDs, categoryIDs)
}

func seedPlatforms(db *gorm.DB) (map[string]string, error) {
	seeds := []domain.Platform{
		{Name: "인스타그램", Slug: "instagram", Icon: "📷", Color: "#E4405F", Description: "인스타그램 마케팅 서비스", SortOrder: 1},
		{Name: "유튜브", Slug: "youtube", Icon: "🎥", Color: "#FF0000", Description: "유튜브 마케팅 서비스", SortOrder: 2},
		{Name: "페이스북", Slug: "facebook", Icon: "📘", Color: "#1877F2", Description: "페이스북 마케팅 서비스", SortOrder: 3},
		{Name: "틱톡", Slug: "tiktok", Icon: "🎵", Color: "#000000", Description: "틱톡 마케팅 서비스", SortOrder: 4},
		{Name: "트위터", Slug: "twitter", Icon: "🐦", Color: "#1DA1F2", Description: "트위터 마케팅 서비스", SortOrder: 5},
	}

	ids := make(map[string]string, len(seeds))
	for _, seed := range seeds {
		var existing domain.Platform
		err := db.Where("slug = ?", seed.Slug).First(&existing).Error
		if err == nil {
			ids[seed.Slug] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		seed.ID = uuid.NewString()
		seed.IsActive = true
		seed.IsVisible = true
		if err := db.Create(&seed).Error; err != nil {
			return nil, err
		}
		ids[seed.Slug] = seed.ID
	}

	return ids, nil
}

func seedCategories(db *gorm.DB, platformIDs map[string]string) (map[string]string, error) {
	type categorySeed struct {
		platformSlug string
		category     domain.Category
	}

	seeds := []categorySeed{
		{"instagram", domain.Category{Name: "좋아요", Slug: "likes", Icon: "❤️", Description: "좋아요 서비스", SortOrder: 1}},
		{"instagram", domain.Category{Name: "팔로워", Slug: "followers", Icon: "👥", Description: "팔로워 서비스", SortOrder: 2}},
		{"youtube", domain.Category{Name: "조회수", Slug: "views", Icon: "👁️", Description: "조회수 서비스", SortOrder: 1}},
		{"youtube", domain.Category{Name: "구독자", Slug: "subscribers", Icon: "🔔", Description: "구독자 서비스", SortOrder: 2}},
	}

	ids := make(map[string]string, len(seeds))
	for _, seed := range seeds {
		platformID := platformIDs[seed.platformSlug]
		key := seed.platformSlug + "/" + seed.category.Slug

		var existing domain.Category
		err := db.Where("platform_id = ? AND slug = ?", platformID, seed.category.Slug).First(&existing).Error
		if err == nil {
			ids[key] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		category := seed.category
		category.ID = uuid.NewString()
		category.PlatformID = platformID
		category.IsActive = true
		category.IsVisible = true
		if err := db.Create(&category).Error; err != nil {
			return nil, err
		}
		ids[key] = category.ID
	}

	return ids, nil
}

func seedServiceSlots(db *gorm.DB, platformIDs, categoryIDs map[string]string) error {
	type slotSeed struct {
		platformSlug string
		categoryKey  string
		slot         domain.ServiceSlot
	}

	seeds := []slotSeed{
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "추천서비스", Slug: "recommended-services", Icon: "⭐", Description: "인기 추천 서비스 모음",
			Price: 5000, MinQuantity: 1, MaxQuantity: 1000, Unit: "개", DeliveryTime: "즉시-1시간",
			Quality: domain.QualityPremium, IsPopular: true, IsRecommended: true, SortOrder: 1,
			Features: []string{"즉시 시작", "100% 안전", "24시간 지원", "리필 보장"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "이벤트", Slug: "events", Icon: "🎁", Description: "특별 이벤트 서비스",
			Price: 3000, MinQuantity: 1, MaxQuantity: 500, Unit: "개", DeliveryTime: "1-6시간",
			Quality: domain.QualityStandard, IsPopular: true, SortOrder: 2,
			Features: []string{"이벤트 가격", "한정 수량", "빠른 처리"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "상위노출", Slug: "top-exposure", Icon: "👑", Description: "게시물 상위 노출 서비스",
			Price: 15000, MinQuantity: 1, MaxQuantity: 100, Unit: "회", DeliveryTime: "12-24시간",
			Quality: domain.QualityPremium, IsRecommended: true, SortOrder: 3,
			Features: []string{"상위 노출", "알고리즘 최적화", "지속 효과"},
		}},
		{"instagram", "instagram/followers", domain.ServiceSlot{
			Name: "계정관리", Slug: "account-management", Icon: "📊", Description: "계정 관리 및 운영 서비스",
			Price: 50000, MinQuantity: 1, MaxQuantity: 10, Unit: "개월", DeliveryTime: "즉시 시작",
			Quality: domain.QualityPremium, SortOrder: 4,
			Features: []string{"전문 관리", "월간 리포트", "24/7 모니터링"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "패키지", Slug: "packages", Icon: "📦", Description: "올인원 패키지 서비스",
			Price: 25000, MinQuantity: 1, MaxQuantity: 50, Unit: "패키지", DeliveryTime: "1-3일",
			Quality: domain.QualityPremium, IsPopular: true, SortOrder: 5,
			Features: []string{"통합 서비스", "할인 혜택", "맞춤 구성"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "인스타그램", Slug: "instagram-services", Icon: "📷", Description: "인스타그램 전용 서비스",
			Price: 1000, MinQuantity: 10, MaxQuantity: 10000, Unit: "개", DeliveryTime: "1-24시간",
			Quality: domain.QualityStandard, SortOrder: 6,
			Features: []string{"실제 계정", "한국인 우선", "자연스러운 증가"},
		}},
		{"youtube", "youtube/views", domain.ServiceSlot{
			Name: "유튜브", Slug: "youtube-services", Icon: "🎥", Description: "유튜브 전용 서비스",
			Price: 500, MinQuantity: 100, MaxQuantity: 100000, Unit: "회", DeliveryTime: "1-48시간",
			Quality: domain.QualityStandard, SortOrder: 7,
			Features: []string{"고급 조회수", "체류시간 보장", "지역별 타겟팅"},
		}},
		{"facebook", "instagram/likes", domain.ServiceSlot{
			Name: "페이스북", Slug: "facebook-services", Icon: "📘", Description: "페이스북 전용 서비스",
			Price: 800, MinQuantity: 10, MaxQuantity: 5000, Unit: "개", DeliveryTime: "2-24시간",
			Quality: domain.QualityStandard, SortOrder: 8,
			Features: []string{"실제 프로필", "안전한 증가", "다양한 연령대"},
		}},
		{"tiktok", "instagram/likes", domain.ServiceSlot{
			Name: "틱톡", Slug: "tiktok-services", Icon: "🎵", Description: "틱톡 전용 서비스",
			Price: 1200, MinQuantity: 10, MaxQuantity: 50000, Unit: "개", DeliveryTime: "1-12시간",
			Quality: domain.QualityStandard, SortOrder: 9,
			Features: []string{"트렌드 반영", "빠른 바이럴", "젊은 층 타겟"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "스레드", Slug: "threads-services", Icon: "🔗", Description: "스레드 전용 서비스",
			Price: 1500, MinQuantity: 5, MaxQuantity: 1000, Unit: "개", DeliveryTime: "2-12시간",
			Quality: domain.QualityStandard, SortOrder: 10,
			Features: []string{"신규 플랫폼", "높은 참여율", "프리미엄 사용자"},
		}},
		{"twitter", "instagram/likes", domain.ServiceSlot{
			Name: "트위터", Slug: "twitter-services", Icon: "🐦", Description: "트위터 전용 서비스",
			Price: 1000, MinQuantity: 10, MaxQuantity: 10000, Unit: "개", DeliveryTime: "1-6시간",
			Quality: domain.QualityStandard, SortOrder: 11,
			Features: []string{"실시간 반영", "글로벌 사용자", "빠른 확산"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "Nz로블", Slug: "nz-roblox", Icon: "📌", Description: "Nz로블 게임 관련 서비스",
			Price: 2000, MinQuantity: 1, MaxQuantity: 1000, Unit: "개", DeliveryTime: "6-24시간",
			Quality: domain.QualityStandard, SortOrder: 12,
			Features: []string{"게임 특화", "안전 보장", "커뮤니티 연동"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "뉴스언론보도", Slug: "news-media", Icon: "📈", Description: "뉴스 및 언론 보도 서비스",
			Price: 100000, MinQuantity: 1, MaxQuantity: 10, Unit: "건", DeliveryTime: "3-7일",
			Quality: domain.QualityPremium, IsRecommended: true, SortOrder: 13,
			Features: []string{"언론사 보도", "신뢰도 높음", "장기적 효과", "SEO 최적화"},
		}},
		{"youtube", "youtube/views", domain.ServiceSlot{
			Name: "채널단", Slug: "channel-group", Icon: "🎬", Description: "채널 단위 서비스",
			Price: 30000, MinQuantity: 1, MaxQuantity: 20, Unit: "채널", DeliveryTime: "1-3일",
			Quality: domain.QualityPremium, SortOrder: 14,
			Features: []string{"채널 전체 관리", "맞춤 전략", "성과 분석"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "카카오", Slug: "kakao-services", Icon: "📺", Description: "카카오 플랫폼 서비스",
			Price: 2000, MinQuantity: 10, MaxQuantity: 5000, Unit: "개", DeliveryTime: "2-12시간",
			Quality: domain.QualityStandard, SortOrder: 15,
			Features: []string{"국내 사용자", "높은 신뢰도", "안전한 서비스"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "스토어마케팅", Slug: "store-marketing", Icon: "🎭", Description: "온라인 스토어 마케팅",
			Price: 20000, MinQuantity: 1, MaxQuantity: 100, Unit: "프로젝트", DeliveryTime: "3-7일",
			Quality: domain.QualityPremium, SortOrder: 16,
			Features: []string{"매출 증대", "브랜드 인지도", "고객 유입"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "어플마케팅", Slug: "app-marketing", Icon: "🎯", Description: "모바일 앱 마케팅",
			Price: 25000, MinQuantity: 1, MaxQuantity: 50, Unit: "프로젝트", DeliveryTime: "5-10일",
			Quality: domain.QualityPremium, SortOrder: 17,
			Features: []string{"앱 다운로드 증가", "사용자 활성화", "ASO 최적화"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "SEO트래픽", Slug: "seo-traffic", Icon: "⚙️", Description: "SEO 및 웹 트래픽 서비스",
			Price: 15000, MinQuantity: 1, MaxQuantity: 200, Unit: "키워드", DeliveryTime: "7-30일",
			Quality: domain.QualityPremium, SortOrder: 18,
			Features: []string{"검색 순위 상승", "자연 트래픽", "지속적 효과"},
		}},
		{"instagram", "instagram/likes", domain.ServiceSlot{
			Name: "기타", Slug: "others", Icon: "🔧", Description: "기타 마케팅 서비스",
			Price: 10000, MinQuantity: 1, MaxQuantity: 100, Unit: "서비스", DeliveryTime: "1-7일",
			Quality: domain.QualityStandard, SortOrder: 19,
			Features: []string{"맞춤 서비스", "유연한 대응", "다양한 옵션"},
		}},
	}

	for _, seed := range seeds {
		platformID := platformIDs[seed.platformSlug]
		categoryID := categoryIDs[seed.categoryKey]

		var existing domain.ServiceSlot
		err := db.Where("platform_id = ? AND category_id = ? AND slug = ?",
			platformID, categoryID, seed.slot.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		slot := seed.slot
		slot.ID = uuid.NewString()
		slot.PlatformID = platformID
		slot.CategoryID = categoryID
		slot.IsActive = true
		slot.IsVisible = true
		if err := db.Create(&slot).Error; err != nil {
			return err
		}
	}

	return nil
}
