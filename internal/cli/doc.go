// Package cli реализует команды docflow-cli.
//
// Команды работают через HTTP API консоли (flag --api-url), кроме
// events — она подключается к брокеру напрямую и слушает поток
// событий run'ов.
//
// Вывод: таблицы через tabwriter, либо JSON при --json.
package cli
