package converter

import "time"

// ProductClassModel представляет запись таблицы product_classes в PostgreSQL.
type ProductClassModel struct {
	ID           int64      `db:"id"`
	StoreID      int64      `db:"store_id"`
	Name         string     `db:"name"`
	Price        *int64     `db:"price"`
	ParentID     *int64     `db:"parent_id"`
	DisplayOrder int        `db:"display_order"`
	IsActive     bool       `db:"is_active"`
	IsLeaf       bool       `db:"is_leaf"`
	Depth        int        `db:"depth"`
	MediaKeys    []string   `db:"media_keys"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// ClassAttributeModel представляет запись таблицы class_attributes в PostgreSQL.
type ClassAttributeModel struct {
	ID              int64     `db:"id"`
	ClassID         int64     `db:"class_id"`
	AttributeTypeID int64     `db:"attribute_type_id"`
	DefaultValue    string    `db:"default_value"`
	Required        bool      `db:"required"`
	Inheritable     bool      `db:"inheritable"`
	Overridable     bool      `db:"overridable"`
	DisplayOrder    int       `db:"display_order"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ClassID     int64      `db:"class_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
