// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// noCopy is embedded in every handle type that must never be copied after
// first use — Execution, Coroutine, NaiveCoroutine all hold a goroutine on
// the other end of a channel, and a copy would let two values drive that
// same goroutine without coordination. go vet's copylocks check flags any
// accidental copy once a type has a Lock method, the same mechanism
// sync.WaitGroup relies on for this.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
