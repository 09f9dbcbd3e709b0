package domain

import "time"

// ClassAttribute привязывает тип атрибута к классу товара.
// Инвариант: не более одной записи на пару (класс, тип атрибута).
type ClassAttribute struct {
	ID              int64
	ClassID         int64
	AttributeTypeID int64
	DefaultValue    string
	Required        bool
	Inheritable     bool // участвует в наследовании потомками
	Overridable     bool // потомок может переопределить определение
	DisplayOrder    int
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func NewClassAttribute(classID, attributeTypeID int64, defaultValue string, required, inheritable, overridable bool, displayOrder int) *ClassAttribute {
	return &ClassAttribute{
		ClassID:         classID,
		AttributeTypeID: attributeTypeID,
		DefaultValue:    defaultValue,
		Required:        required,
		Inheritable:     inheritable,
		Overridable:     overridable,
		DisplayOrder:    displayOrder,
	}
}
