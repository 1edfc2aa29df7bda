package executor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shaiso/Docflow/internal/domain"
	"github.com/shaiso/Docflow/internal/services"
)

// DocumentInputExecutor — executor для узла типа "document_input".
//
// Требует выбранный исходный файл (Config.FileName). Читает сырые байты
// через FileReader и декодирует их по заявленному content type:
//   - application/json (и *+json) — парсится как JSON
//   - text/*                      — строка
//   - прочее                      — data URL с base64
//
// Декодирование — однократная операция, без повторных попыток.
//
// Результат:
//   - name (string): имя файла
//   - content_type (string): заявленный content type
//   - content (any): декодированное содержимое
type DocumentInputExecutor struct {
	Files services.FileReader
}

// Execute читает и декодирует выбранный файл.
func (e *DocumentInputExecutor) Execute(ctx context.Context, node *domain.Node, _ map[string]any) (map[string]any, error) {
	fileName := node.Config.FileName
	if fileName == "" {
		return nil, ErrNoFileSelected
	}

	data, err := e.Files.Read(ctx, fileName)
	if err != nil {
		return nil, err
	}

	contentType := node.Config.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	content, err := decodeContent(contentType, data)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"name":         fileName,
		"content_type": contentType,
		"content":      content,
	}, nil
}

// decodeContent декодирует сырые байты по заявленному content type.
func decodeContent(contentType string, data []byte) (any, error) {
	switch {
	case isJSONType(contentType):
		var parsed any
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentDecode, err)
		}
		return parsed, nil

	case strings.HasPrefix(contentType, "text/"):
		return string(data), nil

	default:
		// Бинарные и неизвестные типы — data URL.
		return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
	}
}

// isJSONType возвращает true для application/json и типов вида *+json.
func isJSONType(contentType string) bool {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
