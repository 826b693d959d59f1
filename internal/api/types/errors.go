package types

import appErr "github.com/userweb/engine/pkg/errors"

func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	return &APIError{Code: string(appErr.CodeOf(err)), Message: appErr.MessageOf(err)}
}
