// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package collective

// Source/Router/PollerBody implement the integration contract a
// storage or fabric wrapper follows to bridge an external completion
// queue into the scheduler: own a dedicated task whose body repeatedly
// polls the external completion source and yields via YieldPoint,
// converting each completion into exactly one waker.wake(payload)
// call. The contract is exercised here with a channel-backed stand-in
// instead of any real transport.
