package domain

import "time"

// ProductBinding фиксирует привязку продукта к листовому классу.
// Привязка неизменяема: продукт не перемещается между классами,
// освобождение возможно только удалением продукта.
type ProductBinding struct {
	ProductID string // uuid продукта из внешнего workflow
	ClassID   int64
	CreatedAt time.Time
}

func NewProductBinding(productID string, classID int64) *ProductBinding {
	return &ProductBinding{
		ProductID: productID,
		ClassID:   classID,
	}
}
