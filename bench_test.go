package streebog

import (
	"fmt"
	"testing"

	"github.com/ddulesov/gogost/gost34112012256"
	"github.com/ddulesov/gogost/gost34112012512"
	"golang.org/x/crypto/sha3"
)

// Comparison benchmarks: this package vs the gogost Streebog and, as a
// throughput yardstick, x/crypto SHA3-512.
var benchSizes = []int{32, 128, 256, 1024, 4096, 500 * 1024}

func benchName(size int) string {
	switch {
	case size >= 1024:
		return fmt.Sprintf("%dK", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func benchData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func BenchmarkSum512(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Sum512(data)
			}
		})
	}
}

func BenchmarkSum256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Sum256(data)
			}
		})
	}
}

func BenchmarkStreaming512(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := New512()
			for i := 0; i < b.N; i++ {
				h.Reset()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}

func BenchmarkGogost512(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := gost34112012512.New()
			for i := 0; i < b.N; i++ {
				h.Reset()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}

func BenchmarkGogost256(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := gost34112012256.New()
			for i := 0; i < b.N; i++ {
				h.Reset()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}

func BenchmarkSHA3_512(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(size)
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := sha3.New512()
			for i := 0; i < b.N; i++ {
				h.Reset()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}
