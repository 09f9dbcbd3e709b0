//go:generate goverter gen github.com/tejarat-tech/catalog-backend/internal/repository/redis/converter

package converter

import (
	"github.com/tejarat-tech/catalog-backend/internal/domain"
)

// ProfileConverter преобразует разрешенный профиль между domain и JSON-моделью для Redis.
// goverter:converter
// goverter:extend ConvertKind
// goverter:extend ConvertKindToString
// goverter:extend ConvertPointerInt64
type ProfileConverter interface {
	ToRedisModel(entity *domain.ResolvedProfile) *ResolvedProfileRedisModel
	ToDomain(model *ResolvedProfileRedisModel) *domain.ResolvedProfile
}

func ConvertKind(s string) domain.AttributeKind {
	return domain.AttributeKind(s)
}

func ConvertKindToString(k domain.AttributeKind) string {
	return string(k)
}

func ConvertPointerInt64(v *int64) *int64 {
	return v
}
