// Package emit writes an ir.Design back as canonical RTLIL text.
//
// Назначение: стабильный вывод для команды parse --emit и для проверки round-trip.
// Не делает: сохранения комментариев и исходного форматирования.
// Зависимости: internal/ir, internal/parser (только CheckRoundTrip).
package emit
