package future

import (
	"time"
)

//400 - Bad Request - Any request not properly formatted for the server to understand and parse it
//404 - Any requested entity which is not being found on the store
//406 - Not Accepted - An attempt on an action the flow no longer allows, such as resubmitting an in-flight checkout
//409 - Conflict - Anything which causes conflicts on the store, like a duplicate order id
//422 - Validation Errors, the field-level errors of a checkout form
//502 - Bad Gateway - The remote store failed to answer a read or write

type ErrorCode int32

const (
	BadRequest      ErrorCode = 400
	NotFound        ErrorCode = 404
	NotAccepted     ErrorCode = 406
	Conflict        ErrorCode = 409
	ValidationError ErrorCode = 422
	InternalError   ErrorCode = 500
	BadGateway      ErrorCode = 502
)

type IFuture interface {
	Get() IDataFuture
	GetTimeout(duration time.Duration) IDataFuture
	Count() int
	Capacity() int
}

type IDataFuture interface {
	Data() interface{}
	Error() IErrorFuture
}

type IErrorFuture interface {
	Code() ErrorCode
	Message() string
	Reason() error
}
