package utils

import (
	"io"
	"sync/atomic"
)

// WriterCounter 包装Writer并统计写入的字节数
type WriterCounter struct {
	count  uint64
	Writer io.Writer
}

func (w *WriterCounter) Write(p []byte) (n int, err error) {
	n, err = w.Writer.Write(p)
	atomic.AddUint64(&w.count, uint64(n))
	return
}

// Count 返回目前已写入的字节数
func (w *WriterCounter) Count() uint64 {
	return atomic.LoadUint64(&w.count)
}
