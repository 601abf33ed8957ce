package future

import (
	"fmt"
	"time"
)

type stream chan IDataFuture

type iFutureImpl struct {
	channel  stream
	count    int
	capacity int
}

func (future iFutureImpl) Get() IDataFuture {
	futureData, ok := <-future.channel
	if !ok {
		return nil
	}
	return futureData
}

func (future iFutureImpl) GetTimeout(duration time.Duration) IDataFuture {
	select {
	case futureData, ok := <-future.channel:
		if !ok {
			return nil
		}
		return futureData
	case <-time.After(duration):
		return nil
	}
}

func (future iFutureImpl) Count() int {
	return future.count
}

func (future iFutureImpl) Capacity() int {
	return future.capacity
}

type iDataFutureImpl struct {
	data        interface{}
	futureError IErrorFuture
}

func (futureData iDataFutureImpl) Data() interface{} {
	return futureData.data
}

func (futureData iDataFutureImpl) Error() IErrorFuture {
	return futureData.futureError
}

type iErrorFutureImpl struct {
	code    ErrorCode
	message string
	reason  error
}

func (errorFuture iErrorFutureImpl) Code() ErrorCode {
	return errorFuture.code
}

func (errorFuture iErrorFutureImpl) Message() string {
	return errorFuture.message
}

func (errorFuture iErrorFutureImpl) Reason() error {
	return errorFuture.reason
}

func (errorFuture iErrorFutureImpl) Error() string {
	return fmt.Sprintf("err code: %d, message: %s, reason: %s", errorFuture.code,
		errorFuture.message, errorFuture.reason)
}
