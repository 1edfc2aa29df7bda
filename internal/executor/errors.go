package executor

import "errors"

// Ошибки executor'ов.
var (
	// ErrUnknownNodeKind — нет executor'а для данного типа узла.
	ErrUnknownNodeKind = errors.New("unknown node kind")

	// ErrNoFileSelected — в узле document_input не выбран файл.
	ErrNoFileSelected = errors.New("no source file selected")

	// ErrNoPromptSelected — в узле prompt_invocation не выбран промпт.
	ErrNoPromptSelected = errors.New("no prompt selected")

	// ErrDocumentDecode — декодирование содержимого документа не удалось.
	ErrDocumentDecode = errors.New("document decode failed")
)
