package utils

import (
	"io"
	"sync/atomic"
)

// ReadCounter 包装Reader并统计读取的字节数。Count可在进度协程中并发调用
type ReadCounter struct {
	count  uint64
	Reader io.Reader
}

func (r *ReadCounter) Read(p []byte) (n int, err error) {
	n, err = r.Reader.Read(p)
	atomic.AddUint64(&r.count, uint64(n))
	return
}

// Count 返回目前已读取的字节数
func (r *ReadCounter) Count() uint64 {
	return atomic.LoadUint64(&r.count)
}
