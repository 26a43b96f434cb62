package model

// LanguageCode는 클라이언트가 요청한 언어 코드입니다
type LanguageCode string

const (
	LanguageKorean  LanguageCode = "ko-KO"
	LanguageEnglish LanguageCode = "en-US"
)

// IsValid는 지원하는 언어 코드인지 확인합니다
func (l LanguageCode) IsValid() bool {
	return l == LanguageKorean || l == LanguageEnglish
}

// IsEnglish는 영어 응답이 필요한지 확인합니다
func (l LanguageCode) IsEnglish() bool {
	return l == LanguageEnglish
}

func (l LanguageCode) String() string {
	return string(l)
}
