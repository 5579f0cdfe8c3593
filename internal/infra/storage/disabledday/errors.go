package disabledday

import "errors"

var (
	// ErrDisabledDayNotFound возвращается, когда закрытый день не найден
	ErrDisabledDayNotFound = errors.New("disabledday.repository: disabled day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("disabledday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("disabledday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("disabledday.repository: failed to scan row")
)
