package converter

// ResolvedProfileRedisModel — JSON-представление разрешенного профиля в кэше.
type ResolvedProfileRedisModel struct {
	ClassID      int64                                  `json:"class_id"`
	Price        int64                                  `json:"price"`
	PriceClassID *int64                                 `json:"price_class_id,omitempty"`
	Attributes   map[int64]ResolvedAttributeRedisModel  `json:"attributes"`
	MediaKeys    []string                               `json:"media_keys,omitempty"`
}

type ResolvedAttributeRedisModel struct {
	AttributeTypeID int64  `json:"attribute_type_id"`
	DefinedBy       int64  `json:"defined_by"`
	Name            string `json:"name"`
	Kind            string `json:"kind"`
	DefaultValue    string `json:"default_value"`
	Required        bool   `json:"required"`
	Overridable     bool   `json:"overridable"`
	DisplayOrder    int    `json:"display_order"`
}
