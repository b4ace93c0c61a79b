// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package seqx_test

import "testing"

// skipRace is a no-op without the race detector; see the race-tagged
// variant for why pool-crossing tests are skipped under -race.
func skipRace(tb testing.TB) {
	tb.Helper()
}
