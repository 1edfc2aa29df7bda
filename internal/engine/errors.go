package engine

import "errors"

// Ошибки графового хранилища.
var (
	// ErrUnknownNode — операция ссылается на несуществующий узел.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateNode — узел с таким ID уже существует.
	ErrDuplicateNode = errors.New("duplicate node ID")

	// ErrDuplicateEdge — ребро с такими концами уже существует.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrUnknownEdge — ребро не найдено.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrSelfLoop — ребро из узла в самого себя.
	ErrSelfLoop = errors.New("edge source and target are the same node")

	// ErrCyclicDependency — обнаружен цикл в зависимостях.
	ErrCyclicDependency = errors.New("cyclic dependency detected")
)

// Ошибки структурной валидации графа.
var (
	// ErrEmptyGraph — граф не содержит узлов.
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrEmptyNodeID — узел не имеет ID.
	ErrEmptyNodeID = errors.New("node has empty ID")

	// ErrUnknownNodeKind — неизвестный тип узла.
	ErrUnknownNodeKind = errors.New("unknown node kind")

	// ErrIsolatedNode — узел не связан ни одним ребром.
	ErrIsolatedNode = errors.New("node is not connected by any edge")

	// ErrNoDocumentInput — в графе нет ни одного узла document_input.
	ErrNoDocumentInput = errors.New("graph has no document_input node")
)

// ValidationError — ошибка валидации с контекстом узла.
type ValidationError struct {
	NodeID  string // ID узла, где произошла ошибка (пустой для ошибок всего графа)
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	if e.NodeID != "" {
		return "node " + e.NodeID + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(nodeID, message string, err error) *ValidationError {
	return &ValidationError{
		NodeID:  nodeID,
		Message: message,
		Err:     err,
	}
}
