package salarystructureerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary structure not found",
		http.StatusNotFound,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"percentage component value must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrStructureInUse = apperror.New(
		apperror.CodeConflict,
		"salary structure is assigned to employees and cannot be deleted",
		http.StatusConflict,
	)
)
