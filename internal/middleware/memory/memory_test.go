package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorage(t *testing.T) {
	s := NewStorage()

	assert.Nil(t, s.Get("missing"))

	s.Set("key", []byte("value"), time.Minute)
	assert.Equal(t, []byte("value"), s.Get("key"))

	s.Set("expired", []byte("value"), -time.Second)
	assert.Nil(t, s.Get("expired"))
}
