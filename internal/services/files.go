package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ошибки чтения файлов.
var (
	// ErrFileNotFound — файл не найден.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileRead — чтение файла завершилось ошибкой.
	ErrFileRead = errors.New("file read failed")

	// ErrPathOutsideRoot — имя файла выводит за пределы корневой директории.
	ErrPathOutsideRoot = errors.New("file path escapes root directory")
)

// FileReader — примитив чтения сырых байтов выбранного пользователем файла.
type FileReader interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// LocalFiles — FileReader поверх локальной директории.
//
// Имена файлов интерпретируются относительно корня; попытка выйти
// за его пределы ("../...") отвергается.
type LocalFiles struct {
	root string
}

// NewLocalFiles создаёт LocalFiles с указанным корнем.
func NewLocalFiles(root string) *LocalFiles {
	return &LocalFiles{root: root}
}

// Read читает сырые байты файла.
func (f *LocalFiles) Read(_ context.Context, name string) ([]byte, error) {
	cleaned := filepath.Clean(name)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return nil, fmt.Errorf("%w: %s", ErrPathOutsideRoot, name)
	}

	data, err := os.ReadFile(filepath.Join(f.root, cleaned))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileRead, name, err)
	}
	return data, nil
}
