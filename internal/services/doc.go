// Package services содержит интерфейсы внешних коллабораторов ядра
// и их реализации по умолчанию.
//
// Ядро потребляет, но не реализует:
//   - files.go   — чтение сырых байтов выбранного пользователем файла
//   - prompts.go — сервис вызова промптов (prompt × document)
//
// Интерфейсы позволяют подменять коллабораторов фейками в тестах.
package services
