package dispatcher

import (
	"github.com/openweb3-io/walletbridge/types"
)

// Normalize folds whatever an external call produced into a single DispatchResult.
// A non-zero code fails with the log, or the raw log when there is no log.
func Normalize(result any, err error) types.DispatchResult {
	if err != nil {
		return types.NewFailure(err.Error())
	}

	if coded, ok := result.(types.CodedResult); ok && coded.ResultCode() != 0 {
		message := coded.ResultLog()
		if message == "" {
			message = coded.ResultRawLog()
		}
		return types.NewFailure(message)
	}

	return types.NewSuccess(result)
}
