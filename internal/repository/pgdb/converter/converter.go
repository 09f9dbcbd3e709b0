//go:generate goverter gen github.com/tejarat-tech/catalog-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/internal/usecase"
)

// ProductClassConverter преобразует сущности ProductClass между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerInt64
type ProductClassConverter interface {
	ToModel(entity *domain.ProductClass) *ProductClassModel
	ToEntity(model *ProductClassModel) *domain.ProductClass
	ToArrEntity(models []*ProductClassModel) []*domain.ProductClass
}

// ClassAttributeConverter преобразует сущности ClassAttribute между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type ClassAttributeConverter interface {
	ToModel(entity *domain.ClassAttribute) *ClassAttributeModel
	ToEntity(model *ClassAttributeModel) *domain.ClassAttribute
	ToArrEntity(models []*ClassAttributeModel) []*domain.ClassAttribute
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxStatusToString
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertOutboxEventTypeToString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertPointerInt64(v *int64) *int64 {
	return v
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxStatusToString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}

func ConvertOutboxEventTypeToString(t usecase.OutboxEventType) string {
	return string(t)
}
