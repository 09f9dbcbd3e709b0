package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"

	"github.com/tejarat-tech/catalog-backend/internal/domain"
	"github.com/tejarat-tech/catalog-backend/internal/usecase"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, e.ErrNotFound.Error()

	case errors.Is(err, e.ErrStatusBadRequest),
		errors.Is(err, e.ErrExpectedMultipart),
		errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrClassNameRequired),
		errors.Is(err, e.ErrInvalidPrice),
		errors.Is(err, e.ErrPricePrecision),
		errors.Is(err, e.ErrTooManyImages),
		errors.Is(err, e.ErrNoImages),
		errors.Is(err, e.ErrUnsupportedMediaType),
		errors.Is(err, e.ErrUnknownAttributeKind),
		errors.Is(err, e.ErrInvalidAttributeValue),
		errors.Is(err, e.ErrChoiceValuesRequired),
		errors.Is(err, e.ErrDuplicateChoiceValue):
		return http.StatusBadRequest, firstKnown(err,
			e.ErrStatusBadRequest, e.ErrExpectedMultipart, e.ErrMissingFields,
			e.ErrClassNameRequired, e.ErrInvalidPrice, e.ErrPricePrecision,
			e.ErrTooManyImages, e.ErrNoImages, e.ErrUnsupportedMediaType,
			e.ErrUnknownAttributeKind, e.ErrInvalidAttributeValue,
			e.ErrChoiceValuesRequired, e.ErrDuplicateChoiceValue)

	case errors.Is(err, e.ErrInvalidParent):
		return http.StatusUnprocessableEntity, e.ErrInvalidParent.Error()
	case errors.Is(err, e.ErrDepthExceeded):
		return http.StatusUnprocessableEntity, e.ErrDepthExceeded.Error()

	case errors.Is(err, e.ErrWouldCreateCycle),
		errors.Is(err, e.ErrHasChildren),
		errors.Is(err, e.ErrHasBoundProducts),
		errors.Is(err, e.ErrLeafViolation),
		errors.Is(err, e.ErrDuplicateAttribute),
		errors.Is(err, e.ErrNonOverridableConflict),
		errors.Is(err, e.ErrAttributeTypeReferenced),
		errors.Is(err, e.ErrAttributeTypeNameTaken),
		errors.Is(err, e.ErrProductAlreadyBound),
		errors.Is(err, e.ErrClassInactive),
		errors.Is(err, e.ErrClassNotLeaf):
		return http.StatusConflict, firstKnown(err,
			e.ErrWouldCreateCycle, e.ErrHasChildren, e.ErrHasBoundProducts,
			e.ErrLeafViolation, e.ErrDuplicateAttribute, e.ErrNonOverridableConflict,
			e.ErrAttributeTypeReferenced, e.ErrAttributeTypeNameTaken,
			e.ErrProductAlreadyBound, e.ErrClassInactive, e.ErrClassNotLeaf)

	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()

	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

// firstKnown возвращает текст первого сентинеля, в который разворачивается err.
func firstKnown(err error, sentinels ...error) string {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}
	return nil
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrStatusBadRequest
	}
	return id, nil
}

// productIDParam возвращает UUID товара из пути или пустую строку.
func productIDParam(r *http.Request) string {
	id := chi.URLParam(r, "productId")
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return id
}

// parsePrice преобразует строку вида "500000" в целую цену.
// Цены хранятся в целых единицах, дробная часть не допускается.
func parsePrice(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if !d.Equal(d.Truncate(0)) {
		return 0, e.ErrPricePrecision
	}

	return d.IntPart(), nil
}

// parseValidationRule переводит правило из запроса в доменное представление.
func parseValidationRule(req *validationRuleRequest) (domain.ValidationRule, error) {
	var rule domain.ValidationRule
	if req == nil {
		return rule, nil
	}

	rule.MinLength = req.MinLength
	rule.MaxLength = req.MaxLength
	rule.Pattern = req.Pattern

	if req.MinValue != nil {
		d, err := decimal.NewFromString(*req.MinValue)
		if err != nil {
			return rule, e.ErrStatusBadRequest
		}
		rule.MinValue = &d
	}
	if req.MaxValue != nil {
		d, err := decimal.NewFromString(*req.MaxValue)
		if err != nil {
			return rule, e.ErrStatusBadRequest
		}
		rule.MaxValue = &d
	}

	return rule, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseMediaFiles(files []*multipart.FileHeader) ([]usecase.MediaImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.MediaImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, usecase.MediaImage{
			Data:     data,
			MimeType: mimeType,
			Size:     int64(len(data)),
			Name:     fh.Filename,
		})
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
