package http

import (
	"net/http"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/internal/usecase"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

type AttributeTypeHandler struct {
	attrTypeUC usecase.AttributeTypeUC
	logger     logger.Logger
}

func NewAttributeTypeHandler(attrTypeUC usecase.AttributeTypeUC, logger logger.Logger) *AttributeTypeHandler {
	return &AttributeTypeHandler{attrTypeUC: attrTypeUC, logger: logger}
}

type attributeTypeRequest struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Kind        string   `json:"kind"`
	Choices     []string `json:"choices,omitempty"`
	Rule        validationRuleRequest `json:"rule"`
}

type validationRuleRequest struct {
	MinLength *int    `json:"min_length,omitempty"`
	MaxLength *int    `json:"max_length,omitempty"`
	MinValue  *string `json:"min_value,omitempty"`
	MaxValue  *string `json:"max_value,omitempty"`
	Pattern   string  `json:"pattern,omitempty"`
}

type attributeTypeResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Kind        string   `json:"kind"`
	Choices     []string `json:"choices,omitempty"`
}

func toAttributeTypeResponse(attrType *domain.AttributeType) attributeTypeResponse {
	return attributeTypeResponse{
		ID:          attrType.ID,
		Name:        attrType.Name,
		DisplayName: attrType.DisplayName,
		Kind:        string(attrType.Kind),
		Choices:     attrType.Choices,
	}
}

func (h *AttributeTypeHandler) buildCreateReq(req *attributeTypeRequest) (*usecase.CreateAttributeTypeReq, error) {
	rule, err := parseValidationRule(&req.Rule)
	if err != nil {
		return nil, err
	}

	return &usecase.CreateAttributeTypeReq{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Kind:        domain.AttributeKind(req.Kind),
		Choices:     req.Choices,
		Rule:        rule,
	}, nil
}

// createAttributeType
//
//	@Summary		Создание типа атрибута
//	@Description	Регистрирует тип атрибута с правилом валидации значений
//	@Tags			attribute-types
//	@Accept			json
//	@Produce		json
//	@Param			request	body		attributeTypeRequest	true	"Описание типа"
//	@Success		201		{object}	attributeTypeResponse
//	@Failure		400		{object}	ErrorResponse	"Неизвестный вид или пустые choice-значения"
//	@Failure		409		{object}	ErrorResponse	"Имя занято"
//	@Router			/attribute-types [post]
func (h *AttributeTypeHandler) createAttributeType(w http.ResponseWriter, r *http.Request) {
	var req attributeTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	createReq, err := h.buildCreateReq(&req)
	if err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.attrTypeUC.CreateAttributeType(r.Context(), createReq)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toAttributeTypeResponse(created))
}

// updateAttributeType
//
//	@Summary	Переопределение типа, не привязанного к классам
//	@Tags		attribute-types
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID типа"
//	@Param		request	body		attributeTypeRequest	true	"Новое описание"
//	@Success	200		{object}	attributeTypeResponse
//	@Failure	409		{object}	ErrorResponse	"Тип уже используется классами"
//	@Router		/attribute-types/{id} [put]
func (h *AttributeTypeHandler) updateAttributeType(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req attributeTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	updateReq, err := h.buildCreateReq(&req)
	if err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.attrTypeUC.UpdateAttributeType(r.Context(), id, updateReq)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAttributeTypeResponse(updated))
}

// getAttributeType
//
//	@Summary	Получение типа атрибута
//	@Tags		attribute-types
//	@Produce	json
//	@Param		id	path		int	true	"ID типа"
//	@Success	200	{object}	attributeTypeResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/attribute-types/{id} [get]
func (h *AttributeTypeHandler) getAttributeType(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	attrType, err := h.attrTypeUC.GetAttributeType(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAttributeTypeResponse(attrType))
}

// listAttributeTypes
//
//	@Summary	Список всех типов атрибутов
//	@Tags		attribute-types
//	@Produce	json
//	@Success	200	{array}	attributeTypeResponse
//	@Router		/attribute-types [get]
func (h *AttributeTypeHandler) listAttributeTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.attrTypeUC.ListAttributeTypes(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]attributeTypeResponse, 0, len(types))
	for _, attrType := range types {
		resp = append(resp, toAttributeTypeResponse(attrType))
	}
	WriteSuccess(w, http.StatusOK, resp)
}

type addChoiceRequest struct {
	Value string `json:"value"`
}

// addChoiceValue
//
//	@Summary		Добавление choice-значения
//	@Description	Единственная разрешенная мутация для типа, на который ссылаются классы
//	@Tags			attribute-types
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID типа"
//	@Param			request	body		addChoiceRequest	true	"Новое значение"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse	"Дубликат значения или не choice-тип"
//	@Router			/attribute-types/{id}/choices [post]
func (h *AttributeTypeHandler) addChoiceValue(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req addChoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.attrTypeUC.AddChoiceValue(r.Context(), id, req.Value); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"added": true})
}
