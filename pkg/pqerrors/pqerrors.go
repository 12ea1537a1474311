package pqerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, означающие конфликт сериализуемых транзакций
const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// IsSerializationFailure распознает сбой сериализации PostgreSQL
// Такой сбой означает, что параллельная сериализуемая транзакция успела
// зафиксировать пересекающиеся изменения; для бизнес-логики это конфликт,
// а не внутренняя ошибка
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailure || string(pqErr.Code) == deadlockDetected
	}
	return false
}
