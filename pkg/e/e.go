package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки структуры дерева классов
	ErrWouldCreateCycle = fmt.Errorf("operation would create a cycle in the class tree")
	ErrDepthExceeded    = fmt.Errorf("maximum tree depth exceeded")
	ErrInvalidParent    = fmt.Errorf("parent class does not exist or is inactive")
	ErrHasChildren      = fmt.Errorf("class still has child classes")
	ErrHasBoundProducts = fmt.Errorf("class still has bound products")
	ErrLeafViolation    = fmt.Errorf("class with bound products cannot become non-leaf")
	ErrNotFound         = fmt.Errorf("not found")

	// Ошибки атрибутов
	ErrDuplicateAttribute      = fmt.Errorf("attribute type already attached to this class")
	ErrNonOverridableConflict  = fmt.Errorf("attribute is inherited as non-overridable and cannot be redefined")
	ErrAttributeTypeReferenced = fmt.Errorf("attribute type is referenced by class attributes and cannot be modified")
	ErrUnknownAttributeKind    = fmt.Errorf("unknown attribute kind")
	ErrInvalidAttributeValue   = fmt.Errorf("value does not satisfy the attribute kind or validation rule")
	ErrChoiceValuesRequired    = fmt.Errorf("choice attribute type requires at least one allowed value")
	ErrDuplicateChoiceValue    = fmt.Errorf("choice value already present")
	ErrAttributeTypeNameTaken  = fmt.Errorf("attribute type name already taken")

	// Ошибки привязки продуктов
	ErrClassInactive       = fmt.Errorf("product class is inactive")
	ErrClassNotLeaf        = fmt.Errorf("only leaf classes may own product instances")
	ErrProductAlreadyBound = fmt.Errorf("product is already bound to a class")

	// 400 Bad Request
	ErrClassNameRequired    = fmt.Errorf("class name is required")
	ErrMissingFields        = fmt.Errorf("required fields are missing")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must be a whole amount")
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
