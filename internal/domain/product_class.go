package domain

import "time"

// ProductClass описывает узел дерева классов товаров.
// Цена хранится в туманах (целая величина); nil означает наследование от предков.
type ProductClass struct {
	ID           int64
	StoreID      int64
	Name         string
	Price        *int64
	ParentID     *int64 // nil — корень дерева
	DisplayOrder int
	IsActive     bool
	IsLeaf       bool // производное поле, пересчитывается хранилищем
	Depth        int  // производное поле, корень = 1
	MediaKeys    []string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewProductClass(storeID int64, name string, parentID *int64, price *int64, displayOrder int) *ProductClass {
	return &ProductClass{
		StoreID:      storeID,
		Name:         name,
		Price:        price,
		ParentID:     parentID,
		DisplayOrder: displayOrder,
		IsActive:     true,
		IsLeaf:       true,
	}
}
