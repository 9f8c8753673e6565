// Package fuzztests houses Go fuzz harnesses for the lexer and the parser.
//
// Назначение: прогонять произвольные байты через лексер и парсер и ловить
// паники, зависания и нарушения инвариантов токенов; для успешно
// разобранных входов проверять, что печать и повторный разбор дают тот же
// текст.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
