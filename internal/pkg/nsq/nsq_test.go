package nsq

import (
	"errors"
	"testing"

	"github.com/nsqio/go-nsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recomputeRequest struct {
	CaptainID int64 `json:"captainId"`
}

func TestMarshalUnmarshalMessage(t *testing.T) {
	body, err := MarshalMessage(recomputeRequest{CaptainID: 12})
	require.NoError(t, err)

	var got recomputeRequest
	require.NoError(t, UnmarshalMessage(body, &got))
	assert.Equal(t, int64(12), got.CaptainID)

	assert.Error(t, UnmarshalMessage([]byte("{"), &got))

	_, err = MarshalMessage(make(chan int))
	assert.Error(t, err)
}

func TestWrapHandler(t *testing.T) {
	var seen []byte
	ok := wrapHandler("topic", func(b []byte) error {
		seen = b
		return nil
	})
	msg := nsq.NewMessage(nsq.MessageID{}, []byte(`{"captainId":1}`))
	assert.NoError(t, ok(msg))
	assert.JSONEq(t, `{"captainId":1}`, string(seen))

	failing := wrapHandler("topic", func(b []byte) error { return errors.New("store down") })
	assert.Error(t, failing(msg))
}

func TestNewProducer_Unreachable(t *testing.T) {
	p, err := NewProducer("127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "failed to ping NSQ daemon")
}
