package yaerrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YaCodeDev/GoYaTgNotify/yaerrors"
)

func TestFromString_Works(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusNotFound, "bot not found")

	assert.Equal(t, http.StatusNotFound, err.Code())
	assert.Equal(t, "404 | bot not found", err.Error())
}

func TestFromError_Works(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := yaerrors.FromError(http.StatusBadGateway, cause, "telegram send failed")

	assert.Equal(t, http.StatusBadGateway, err.Code())
	assert.Equal(t, "502 | telegram send failed: connection refused", err.Error())
}

func TestWrap_GrowsTraceback(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusNotFound, "bot not found").
		Wrap("failed to resolve bot").
		Wrap("failed to send notification")

	assert.Equal(
		t,
		"404 | failed to send notification -> failed to resolve bot -> bot not found",
		err.Error(),
	)
}

func TestUnwrap_ReturnsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("timeout")
	err := yaerrors.FromError(http.StatusGatewayTimeout, cause, "request failed")

	assert.True(t, errors.Is(err, cause))
}

func TestUnwrapLastError_ReturnsHeadSegment(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusNotFound, "bot not found").
		Wrap("failed to resolve bot")

	assert.Equal(t, "failed to resolve bot", err.UnwrapLastError())
}

func TestUnwrapLastError_NoWrap(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusBadRequest, "invalid dialect")

	assert.Equal(t, "invalid dialect", err.UnwrapLastError())
}
