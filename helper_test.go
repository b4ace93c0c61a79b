// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqx_test

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// goid parses the current goroutine's id from its stack header.
// Tests use it only to count distinct workers; nothing in the library
// depends on goroutine identity.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		panic("seqx_test: unparsable stack header: " + string(buf[:n]))
	}
	return id
}

// goidSet records distinct goroutine ids across concurrent callers.
type goidSet struct {
	m sync.Map
}

func (s *goidSet) record() {
	s.m.Store(goid(), struct{}{})
}

func (s *goidSet) size() int {
	n := 0
	s.m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
