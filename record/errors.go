package record

import (
	"fmt"

	"github.com/GPA-Gruppo-Progetti-Avanzati-SRL/go-core-app"
	"github.com/GPA-Gruppo-Progetti-Avanzati-SRL/go-strsafe"
)

const ErrorAmbit = "strsafe-record"

const RecordLibErrorCode = "99999"

func technicalError(err error) *core.ApplicationError {
	return core.TechnicalErrorWithError(err)
}

func recordError(format string, args ...any) *core.ApplicationError {
	return &core.ApplicationError{
		StatusCode: 500,
		Ambit:      ErrorAmbit,
		Code:       RecordLibErrorCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

// fieldError reports a failed slot operation on a named field.
func fieldError(field string, hr strsafe.HRESULT) *core.ApplicationError {
	appErr := strsafe.ApplicationError(ErrorAmbit, hr)
	appErr.Message = fmt.Sprintf("field %s: %s", field, appErr.Message)
	return appErr
}
