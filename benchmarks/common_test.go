package benchmarks

// Shared fixtures for the scan benchmarks. The canonical workload is a
// 1 MiB zero buffer whose final byte is nonzero, so every scan must walk
// the whole buffer before it can finish.

const bufLen = 1 << 20

func tailByteBuffer() []byte {
	v := make([]byte, bufLen)
	v[bufLen-1] = 1
	return v
}

func isZeroByte(b byte) bool { return b == 0 }

func isNonZeroByte(b byte) bool { return b != 0 }
