package future

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureData(t *testing.T) {
	f := Factory().SetCapacity(1).Build()

	go func() {
		FactoryOf(f).SetData("payload").Send()
	}()

	futureData := f.Get()
	require.NotNil(t, futureData)
	require.Nil(t, futureData.Error())
	assert.Equal(t, "payload", futureData.Data())
}

func TestFutureError(t *testing.T) {
	f := Factory().SetCapacity(1).Build()

	go func() {
		FactoryOf(f).SetError(BadGateway, "remote read failed", errors.New("boom")).Send()
	}()

	futureData := f.Get()
	require.NotNil(t, futureData)
	require.NotNil(t, futureData.Error())
	assert.Equal(t, BadGateway, futureData.Error().Code())
	assert.Equal(t, "remote read failed", futureData.Error().Message())
	assert.Equal(t, "boom", futureData.Error().Reason().Error())
}

func TestFutureGetTimeout(t *testing.T) {
	f := Factory().SetCapacity(1).Build()

	futureData := f.GetTimeout(10 * time.Millisecond)
	assert.Nil(t, futureData)
}

func TestBuildAndSend(t *testing.T) {
	f := Factory().SetCapacity(1).SetData(42).BuildAndSend()

	futureData := f.Get()
	require.NotNil(t, futureData)
	assert.Equal(t, 42, futureData.Data())
}
