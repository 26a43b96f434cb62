package constants

import "errors"

var (
	// ErrInvalidRequest는 요청 본문이 형식에 맞지 않을 때 반환됩니다
	ErrInvalidRequest = errors.New("잘못된 요청입니다")
	// ErrUnknownCafeteria는 식당 이름을 해석할 수 없을 때 반환됩니다
	ErrUnknownCafeteria = errors.New("알 수 없는 식당입니다")
	// ErrUnavailable은 외부 의존성이 설정되지 않았을 때 반환됩니다
	ErrUnavailable = errors.New("서비스를 사용할 수 없습니다")
)
