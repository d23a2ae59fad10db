package ctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithValue(t *testing.T) {
	c := WithValue(Background(), "key", "value")
	assert.Equal(t, "value", c.Value("key"))
}

func TestWithTimeout(t *testing.T) {
	c, cancel := WithTimeout(Background(), time.Millisecond)
	defer cancel()

	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("context did not expire")
	}
	assert.Error(t, c.Err())
}

func TestWithCancel(t *testing.T) {
	c, cancel := WithCancel(Background())
	cancel()
	assert.Error(t, c.Err())
}
