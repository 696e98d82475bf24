//go:build !windows

package progressw

const columnsReserve = 0
