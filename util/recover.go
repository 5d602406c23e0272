package util

import (
	"errors"
	"fmt"
)

// InterfaceToError turns a recovered panic value into an error
func InterfaceToError(errorInterface interface{}) error {
	if err, ok := errorInterface.(error); ok {
		return err
	}

	if stringifiedErr, ok := errorInterface.(string); ok {
		return errors.New(stringifiedErr)
	}

	return fmt.Errorf("recovered from a panic: %v", errorInterface)
}
