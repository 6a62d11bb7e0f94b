package nats

import (
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_InvalidURL(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "test")

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestClient_PublishSubscribe(t *testing.T) {
	s := natsserver.RunRandClientPortServer()
	defer s.Shutdown()

	client, err := NewClient(s.ClientURL(), "test")
	require.NoError(t, err)
	defer client.Close()
	assert.True(t, client.IsConnected())

	received := make(chan []byte, 1)
	sub, err := client.Subscribe("ride.updated", func(msg *nats.Msg) {
		received <- msg.Data
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, client.PublishJSON("ride.updated", map[string]string{"status": "searching"}))
	require.NoError(t, client.Flush())

	select {
	case data := <-received:
		assert.JSONEq(t, `{"status":"searching"}`, string(data))
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}
}

func TestClient_QueueSubscribe(t *testing.T) {
	s := natsserver.RunRandClientPortServer()
	defer s.Shutdown()

	client, err := NewClient(s.ClientURL(), "test")
	require.NoError(t, err)
	defer client.Close()

	received := make(chan string, 4)
	for i := 0; i < 2; i++ {
		_, err := client.QueueSubscribe("ride.completed", "wallet", func(msg *nats.Msg) {
			received <- string(msg.Data)
		})
		require.NoError(t, err)
	}

	require.NoError(t, client.Publish("ride.completed", []byte("one")))
	require.NoError(t, client.Flush())

	select {
	case got := <-received:
		assert.Equal(t, "one", got)
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}

	select {
	case <-received:
		t.Fatal("queue group delivered the message twice")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestClient_PublishJSONMarshalError(t *testing.T) {
	client := &Client{}
	err := client.PublishJSON("x", make(chan int))
	assert.Error(t, err)
}
