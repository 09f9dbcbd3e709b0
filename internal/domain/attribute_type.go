package domain

import (
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

// AttributeKind определяет вид данных атрибута
type AttributeKind string

const (
	KindText    AttributeKind = "text"
	KindNumber  AttributeKind = "number"
	KindBoolean AttributeKind = "boolean"
	KindDate    AttributeKind = "date"
	KindChoice  AttributeKind = "choice"
	KindColor   AttributeKind = "color"
)

// dateLayout — формат значений атрибутов вида "дата"
const dateLayout = "2006-01-02"

var colorHexRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidationRule описывает дополнительное правило проверки значения атрибута.
// Все поля опциональны; nil означает отсутствие ограничения.
type ValidationRule struct {
	MinLength *int
	MaxLength *int
	MinValue  *decimal.Decimal
	MaxValue  *decimal.Decimal
	Pattern   string
}

// AttributeType описывает глобальный тип атрибута, разделяемый между классами.
// После того как тип привязан хотя бы к одному классу, он неизменяем,
// за исключением добавления новых значений выбора.
type AttributeType struct {
	ID          int64
	Name        string // машинное имя, уникально
	DisplayName string
	Kind        AttributeKind
	Choices     []string // упорядоченный список значений для Kind == choice
	Rule        *ValidationRule
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewAttributeType(name, displayName string, kind AttributeKind, choices []string, rule ValidationRule) (*AttributeType, error) {
	if !KnownKind(kind) {
		return nil, e.ErrUnknownAttributeKind
	}
	if kind == KindChoice && len(choices) == 0 {
		return nil, e.ErrChoiceValuesRequired
	}

	t := &AttributeType{
		Name:        name,
		DisplayName: displayName,
		Kind:        kind,
		Choices:     choices,
	}
	if rule != (ValidationRule{}) {
		t.Rule = &rule
	}
	return t, nil
}

// KnownKind проверяет, что вид данных входит в поддерживаемый набор.
func KnownKind(kind AttributeKind) bool {
	switch kind {
	case KindText, KindNumber, KindBoolean, KindDate, KindChoice, KindColor:
		return true
	default:
		return false
	}
}

// ValidateValue проверяет строковое значение на соответствие виду данных
// и правилу валидации типа. Пустое значение считается допустимым —
// обязательность контролируется флагом Required у атрибута класса.
func (t *AttributeType) ValidateValue(value string) error {
	if value == "" {
		return nil
	}

	switch t.Kind {
	case KindText:
		// только правило ниже
	case KindNumber:
		num, err := decimal.NewFromString(value)
		if err != nil {
			return e.ErrInvalidAttributeValue
		}
		if t.Rule != nil {
			if t.Rule.MinValue != nil && num.LessThan(*t.Rule.MinValue) {
				return e.ErrInvalidAttributeValue
			}
			if t.Rule.MaxValue != nil && num.GreaterThan(*t.Rule.MaxValue) {
				return e.ErrInvalidAttributeValue
			}
		}
	case KindBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			return e.ErrInvalidAttributeValue
		}
	case KindDate:
		if _, err := time.Parse(dateLayout, value); err != nil {
			return e.ErrInvalidAttributeValue
		}
	case KindChoice:
		if !slices.Contains(t.Choices, value) {
			return e.ErrInvalidAttributeValue
		}
	case KindColor:
		if !colorHexRe.MatchString(value) {
			return e.ErrInvalidAttributeValue
		}
	default:
		return e.ErrUnknownAttributeKind
	}

	if t.Rule != nil {
		if t.Rule.MinLength != nil && len([]rune(value)) < *t.Rule.MinLength {
			return e.ErrInvalidAttributeValue
		}
		if t.Rule.MaxLength != nil && len([]rune(value)) > *t.Rule.MaxLength {
			return e.ErrInvalidAttributeValue
		}
		if t.Rule.Pattern != "" {
			re, err := regexp.Compile(t.Rule.Pattern)
			if err != nil {
				return e.Wrap("invalid validation pattern", err)
			}
			if !re.MatchString(value) {
				return e.ErrInvalidAttributeValue
			}
		}
	}

	return nil
}

// AddChoice добавляет новое значение выбора. Единственная мутация,
// разрешенная для типа, на который уже ссылаются атрибуты классов.
func (t *AttributeType) AddChoice(value string) error {
	if t.Kind != KindChoice {
		return e.ErrUnknownAttributeKind
	}
	if slices.Contains(t.Choices, value) {
		return e.ErrDuplicateChoiceValue
	}
	t.Choices = append(t.Choices, value)
	return nil
}
