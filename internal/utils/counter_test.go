package utils

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"io"
	"io/ioutil"
	"strings"
	"testing"
)

func TestReadCounter(t *testing.T) {
	counter := &ReadCounter{Reader: strings.NewReader("0,-15,8\n1,15,12\n")}
	data, err := ioutil.ReadAll(counter)
	assert.NoError(t, err)
	assert.Equal(t, uint64(len(data)), counter.Count())

	/* 读取结束后再读不增加计数 */
	_, err = counter.Read(make([]byte, 8))
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, uint64(len(data)), counter.Count())
}

func TestWriterCounter(t *testing.T) {
	buf := &bytes.Buffer{}
	counter := &WriterCounter{Writer: buf}
	n, err := counter.Write([]byte("region_id,avg_temp_celsius,temp_variance\n"))
	assert.NoError(t, err)
	assert.Equal(t, uint64(n), counter.Count())

	_, err = counter.Write([]byte("0,-15,8\n"))
	assert.NoError(t, err)
	assert.Equal(t, uint64(buf.Len()), counter.Count())
}
