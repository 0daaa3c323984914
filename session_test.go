package tinyline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisableEchoSuppressesOutput(t *testing.T) {
	s := newTestSession()
	s.DisableEcho(0)
	s.InsertText("secret")
	buf, point := s.echoView()
	assert.Equal(t, []byte(nil), buf)
	assert.Equal(t, 0, point)
}

func TestDisableEchoSubstitutesChar(t *testing.T) {
	s := newTestSession()
	s.DisableEcho('*')
	s.InsertText("hi")
	buf, point := s.echoView()
	assert.Equal(t, "**", string(buf))
	assert.Equal(t, 2, point)
}

func TestEnableEchoIsDefault(t *testing.T) {
	s := newTestSession()
	s.InsertText("hi")
	buf, point := s.echoView()
	assert.Equal(t, "hi", string(buf))
	assert.Equal(t, 2, point)
}

func TestDingWritesBell(t *testing.T) {
	var out bytes.Buffer
	s := New(bytes.NewReader(nil), &out)
	s.Ding()
	assert.Equal(t, "\a", out.String())
}

func TestRedisplayIdempotent(t *testing.T) {
	var out bytes.Buffer
	s := New(bytes.NewReader(nil), &out)
	s.InsertText("hi")
	s.Redisplay()
	out.Reset()
	s.Redisplay()
	assert.Equal(t, "", out.String())
}
