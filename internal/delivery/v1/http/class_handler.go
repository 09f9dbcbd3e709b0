package http

import (
	"net/http"

	"github.com/tejarat-tech/catalog-backend/internal/usecase"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

type ClassHandler struct {
	hierarchyUC usecase.HierarchyUC
	logger      logger.Logger
}

func NewClassHandler(hierarchyUC usecase.HierarchyUC, logger logger.Logger) *ClassHandler {
	return &ClassHandler{hierarchyUC: hierarchyUC, logger: logger}
}

type createClassRequest struct {
	StoreID      int64  `json:"store_id"`
	Name         string `json:"name"`
	ParentID     *int64 `json:"parent_id,omitempty"`
	Price        *string `json:"price,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

type classResponse struct {
	ID           int64  `json:"id"`
	StoreID      int64  `json:"store_id"`
	Name         string `json:"name"`
	ParentID     *int64 `json:"parent_id,omitempty"`
	Price        *int64 `json:"price,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
	IsLeaf       bool   `json:"is_leaf"`
	Depth        int    `json:"depth"`
	MediaKeys    []string `json:"media_keys,omitempty"`
}

func toClassResponse(info *usecase.ClassInfo) classResponse {
	return classResponse{
		ID:           info.ID,
		StoreID:      info.StoreID,
		Name:         info.Name,
		ParentID:     info.ParentID,
		Price:        info.Price,
		DisplayOrder: info.DisplayOrder,
		IsActive:     info.IsActive,
		IsLeaf:       info.IsLeaf,
		Depth:        info.Depth,
		MediaKeys:    info.MediaKeys,
	}
}

// createClass
//
//	@Summary		Создание класса товаров
//	@Description	Создает узел дерева классов, опционально с родителем и ценой
//	@Tags			classes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createClassRequest	true	"Параметры класса"
//	@Success		201		{object}	classResponse		"Созданный класс"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse		"Конфликт структуры дерева"
//	@Router			/classes [post]
func (h *ClassHandler) createClass(w http.ResponseWriter, r *http.Request) {
	var req createClassRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	var price *int64
	if req.Price != nil {
		parsed, err := parsePrice(*req.Price)
		if err != nil {
			h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
		price = &parsed
	}

	info, err := h.hierarchyUC.CreateClass(r.Context(), &usecase.CreateClassReq{
		StoreID:      req.StoreID,
		Name:         req.Name,
		ParentID:     req.ParentID,
		Price:        price,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toClassResponse(info))
}

type moveClassRequest struct {
	NewParentID *int64 `json:"new_parent_id"`
}

// moveClass
//
//	@Summary	Перенос класса под нового родителя
//	@Tags		classes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"ID класса"
//	@Param		request	body		moveClassRequest	true	"Новый родитель (null — в корень)"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	409		{object}	ErrorResponse	"Цикл или нарушение листового инварианта"
//	@Router		/classes/{id}/move [patch]
func (h *ClassHandler) moveClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req moveClassRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.hierarchyUC.MoveClass(r.Context(), &usecase.MoveClassReq{ClassID: id, NewParentID: req.NewParentID}); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"moved": true})
}

// deleteClass
//
//	@Summary	Удаление листового класса без привязанных товаров
//	@Tags		classes
//	@Produce	json
//	@Param		id	path		int	true	"ID класса"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	409	{object}	ErrorResponse	"Есть дети или привязанные товары"
//	@Router		/classes/{id} [delete]
func (h *ClassHandler) deleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.hierarchyUC.DeleteClass(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

type setPriceRequest struct {
	// Price == null снимает явную цену, класс наследует ее от предков.
	Price *string `json:"price"`
}

// setPrice
//
//	@Summary	Установка или сброс явной цены класса
//	@Tags		classes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID класса"
//	@Param		request	body		setPriceRequest	true	"Новая цена (null — наследовать)"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	400		{object}	ErrorResponse	"Некорректная цена"
//	@Router		/classes/{id}/price [put]
func (h *ClassHandler) setPrice(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req setPriceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	var price *int64
	if req.Price != nil {
		parsed, err := parsePrice(*req.Price)
		if err != nil {
			WriteError(w, err)
			return
		}
		price = &parsed
	}

	if err := h.hierarchyUC.SetPrice(r.Context(), id, price); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"updated": true})
}

type setStatusRequest struct {
	IsActive bool `json:"is_active"`
}

// setStatus
//
//	@Summary	Активация или деактивация класса
//	@Tags		classes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"ID класса"
//	@Param		request	body		setStatusRequest	true	"Новый статус"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/classes/{id}/status [put]
func (h *ClassHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.hierarchyUC.SetActive(r.Context(), id, req.IsActive); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"updated": true})
}

type profileResponse struct {
	ClassID      int64                      `json:"class_id"`
	Price        int64                      `json:"price"`
	PriceClassID *int64                     `json:"price_class_id,omitempty"`
	Attributes   []profileAttributeResponse `json:"attributes"`
	MediaKeys    []string                   `json:"media_keys,omitempty"`
}

type profileAttributeResponse struct {
	AttributeTypeID int64  `json:"attribute_type_id"`
	DefinedBy       int64  `json:"defined_by"`
	Name            string `json:"name"`
	Kind            string `json:"kind"`
	DefaultValue    string `json:"default_value"`
	Required        bool   `json:"required"`
	Overridable     bool   `json:"overridable"`
	DisplayOrder    int    `json:"display_order"`
}

// getProfile
//
//	@Summary		Эффективный профиль класса
//	@Description	Возвращает цену, атрибуты и медиа класса с учетом наследования
//	@Tags			classes
//	@Produce		json
//	@Param			id	path		int	true	"ID класса"
//	@Success		200	{object}	profileResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/classes/{id}/profile [get]
func (h *ClassHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	profile, err := h.hierarchyUC.Resolve(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := profileResponse{
		ClassID:      profile.ClassID,
		Price:        profile.Price,
		PriceClassID: profile.PriceClassID,
		MediaKeys:    profile.MediaKeys,
		Attributes:   make([]profileAttributeResponse, 0, len(profile.Attributes)),
	}
	for _, attr := range profile.Attributes {
		resp.Attributes = append(resp.Attributes, profileAttributeResponse{
			AttributeTypeID: attr.AttributeTypeID,
			DefinedBy:       attr.DefinedBy,
			Name:            attr.Name,
			Kind:            string(attr.Kind),
			DefaultValue:    attr.DefaultValue,
			Required:        attr.Required,
			Overridable:     attr.Overridable,
			DisplayOrder:    attr.DisplayOrder,
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// getChildren
//
//	@Summary	Прямые дети класса в порядке отображения
//	@Tags		classes
//	@Produce	json
//	@Param		id	path		int	true	"ID класса"
//	@Success	200	{array}		classResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/classes/{id}/children [get]
func (h *ClassHandler) getChildren(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	children, err := h.hierarchyUC.Children(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]classResponse, 0, len(children))
	for i := range children {
		resp = append(resp, toClassResponse(&children[i]))
	}
	WriteSuccess(w, http.StatusOK, resp)
}

// getAncestors
//
//	@Summary	Цепочка предков от узла к корню
//	@Tags		classes
//	@Produce	json
//	@Param		id				path		int		true	"ID класса"
//	@Param		include_self	query		bool	false	"Включить сам узел"
//	@Success	200				{array}		classResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/classes/{id}/ancestors [get]
func (h *ClassHandler) getAncestors(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	includeSelf := r.URL.Query().Get("include_self") == "true"

	ancestors, err := h.hierarchyUC.Ancestors(r.Context(), id, includeSelf)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]classResponse, 0, len(ancestors))
	for i := range ancestors {
		resp = append(resp, toClassResponse(&ancestors[i]))
	}
	WriteSuccess(w, http.StatusOK, resp)
}

// getDescendants
//
//	@Summary	Идентификаторы всех потомков класса
//	@Tags		classes
//	@Produce	json
//	@Param		id	path		int	true	"ID класса"
//	@Success	200	{array}		int
//	@Failure	404	{object}	ErrorResponse
//	@Router		/classes/{id}/descendants [get]
func (h *ClassHandler) getDescendants(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	ids, err := h.hierarchyUC.Descendants(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if ids == nil {
		ids = []int64{}
	}
	WriteSuccess(w, http.StatusOK, ids)
}

// uploadMedia
//
//	@Summary	Загрузка медиа класса
//	@Tags		classes
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		int		true	"ID класса"
//	@Param		images	formData	file	true	"Файлы изображений"
//	@Success	201		{object}	map[string]interface{}	"Ключи загруженных объектов"
//	@Failure	400		{object}	ErrorResponse
//	@Router		/classes/{id}/media [post]
func (h *ClassHandler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	images, err := parseMediaFiles(r.MultipartForm.File["images"])
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.hierarchyUC.AttachMedia(r.Context(), &usecase.AttachMediaReq{ClassID: id, Images: images})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{"keys": res.Keys})
}

type classAttributeRequest struct {
	AttributeTypeID int64  `json:"attribute_type_id"`
	DefaultValue    string `json:"default_value"`
	Required        bool   `json:"required"`
	Inheritable     bool   `json:"inheritable"`
	Overridable     bool   `json:"overridable"`
	DisplayOrder    int    `json:"display_order"`
}

// addAttribute
//
//	@Summary	Определение атрибута на классе
//	@Tags		classes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID класса"
//	@Param		request	body		classAttributeRequest	true	"Определение атрибута"
//	@Success	201		{object}	map[string]interface{}
//	@Failure	409		{object}	ErrorResponse	"Дубликат или запрет переопределения"
//	@Router		/classes/{id}/attributes [post]
func (h *ClassHandler) addAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req classAttributeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	added, err := h.hierarchyUC.AddAttribute(r.Context(), &usecase.AddAttributeReq{
		ClassID:         id,
		AttributeTypeID: req.AttributeTypeID,
		DefaultValue:    req.DefaultValue,
		Required:        req.Required,
		Inheritable:     req.Inheritable,
		Overridable:     req.Overridable,
		DisplayOrder:    req.DisplayOrder,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{"id": added.ID})
}

// updateAttribute
//
//	@Summary	Изменение определения атрибута на классе
//	@Tags		classes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID класса"
//	@Param		typeId	path		int						true	"ID типа атрибута"
//	@Param		request	body		classAttributeRequest	true	"Новое определение"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	ErrorResponse
//	@Router		/classes/{id}/attributes/{typeId} [put]
func (h *ClassHandler) updateAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	typeID, err := parseIDParam(r, "typeId")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req classAttributeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	err = h.hierarchyUC.UpdateAttribute(r.Context(), &usecase.UpdateAttributeReq{
		ClassID:         id,
		AttributeTypeID: typeID,
		DefaultValue:    req.DefaultValue,
		Required:        req.Required,
		Inheritable:     req.Inheritable,
		Overridable:     req.Overridable,
		DisplayOrder:    req.DisplayOrder,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"updated": true})
}

// removeAttribute
//
//	@Summary	Снятие определения атрибута с класса
//	@Tags		classes
//	@Produce	json
//	@Param		id		path		int	true	"ID класса"
//	@Param		typeId	path		int	true	"ID типа атрибута"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	ErrorResponse
//	@Router		/classes/{id}/attributes/{typeId} [delete]
func (h *ClassHandler) removeAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}
	typeID, err := parseIDParam(r, "typeId")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.hierarchyUC.RemoveAttribute(r.Context(), id, typeID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"removed": true})
}

// canBind
//
//	@Summary		Проверка допустимости привязки товара к классу
//	@Description	Товары привязываются только к активным листовым классам
//	@Tags			classes
//	@Produce		json
//	@Param			id	path		int	true	"ID класса"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Router			/classes/{id}/can-bind [get]
func (h *ClassHandler) canBind(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	decision, err := h.hierarchyUC.CanBindProduct(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := map[string]interface{}{"allowed": decision.Allowed}
	if !decision.Allowed {
		resp["reason"] = decision.Reason
	}
	WriteSuccess(w, http.StatusOK, resp)
}

type bindProductRequest struct {
	ClassID int64 `json:"class_id"`
}

// bindProduct
//
//	@Summary	Привязка товара к листовому классу
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		productId	path		string				true	"UUID товара"
//	@Param		request		body		bindProductRequest	true	"Класс для привязки"
//	@Success	201			{object}	map[string]interface{}
//	@Failure	409			{object}	ErrorResponse	"Класс неактивен, не лист или товар уже привязан"
//	@Router		/products/{productId}/binding [post]
func (h *ClassHandler) bindProduct(w http.ResponseWriter, r *http.Request) {
	productID := productIDParam(r)
	if productID == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var req bindProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.hierarchyUC.BindProduct(r.Context(), req.ClassID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{"bound": true})
}

// unbindProduct
//
//	@Summary	Отвязка товара от класса
//	@Tags		products
//	@Produce	json
//	@Param		productId	path		string	true	"UUID товара"
//	@Success	200			{object}	map[string]interface{}
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{productId}/binding [delete]
func (h *ClassHandler) unbindProduct(w http.ResponseWriter, r *http.Request) {
	productID := productIDParam(r)
	if productID == "" {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := h.hierarchyUC.UnbindProduct(r.Context(), productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"unbound": true})
}
