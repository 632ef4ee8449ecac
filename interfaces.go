// Copyright 2018 The ZikiChomgo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package legato

import "zikichombo.org/sound/freq"

// SampleDecoder decodes an encoded audio file into a per-channel PCM
// SampleTable at the given target sample rate. File-format parsing is
// explicitly outside the core; the core only ever consumes the resulting
// SampleTable through Resources.StoreSample.
type SampleDecoder interface {
	Decode(path string, targetSampleRate freq.T) (*SampleTable, error)
}

// Sink is what an audio-driver callback or a file-render loop pulls
// Runtime.Step's output into. The core never implements a concrete Sink;
// callers own the driver or file-format detail.
type Sink interface {
	WriteBlock(frame Frame) error
}
