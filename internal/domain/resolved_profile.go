package domain

// ResolvedAttribute — эффективное определение атрибута после разрешения наследования.
type ResolvedAttribute struct {
	AttributeTypeID int64
	DefinedBy       int64 // ID класса, чье определение победило
	Name            string
	Kind            AttributeKind
	DefaultValue    string
	Required        bool
	Overridable     bool
	DisplayOrder    int
}

// ResolvedProfile — производный результат разрешения наследования для одного класса.
// Хранится только в кэше, никогда не является источником истины.
type ResolvedProfile struct {
	ClassID      int64
	Price        int64  // 0, если ни один узел на пути к корню не задал цену
	PriceClassID *int64 // ID класса-источника цены; nil при платформенном значении по умолчанию
	Attributes   map[int64]ResolvedAttribute
	MediaKeys    []string // объединенный список медиа от корня к узлу, без дубликатов
}

// Clone возвращает глубокую копию профиля. Кэш и вызывающие не должны
// разделять карту атрибутов и список медиа.
func (p *ResolvedProfile) Clone() *ResolvedProfile {
	if p == nil {
		return nil
	}

	cp := *p
	if p.PriceClassID != nil {
		id := *p.PriceClassID
		cp.PriceClassID = &id
	}
	if p.Attributes != nil {
		cp.Attributes = make(map[int64]ResolvedAttribute, len(p.Attributes))
		for typeID, attr := range p.Attributes {
			cp.Attributes[typeID] = attr
		}
	}
	if p.MediaKeys != nil {
		cp.MediaKeys = append([]string(nil), p.MediaKeys...)
	}

	return &cp
}
