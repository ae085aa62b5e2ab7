// Package wavdump captures a stream of floating-point audio samples to a
// WAV file, as a standalone sink any sample producer can write to rather
// than one wired directly into channel synthesis.
package wavdump

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// Writer buffers float32 samples in [-1, 1] and flushes them to a WAV file
// as signed 16-bit PCM frames.
type Writer struct {
	enc *wav.Encoder
	buf *audio.IntBuffer
}

// New returns a Writer encoding a single-channel PCM16 stream at sampleRate
// into w. Samples are buffered in batches of bufferSize before each flush.
func New(w io.WriteSeeker, sampleRate, bufferSize int) *Writer {
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	return &Writer{
		enc: wav.NewEncoder(w, sampleRate, 16, 1, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
			Data:   make([]int, 0, bufferSize),
		},
	}
}

// Write appends one sample, clamped to [-1, 1], flushing the batch to disk
// once it fills.
func (w *Writer) Write(sample float32) error {
	switch {
	case sample > 1:
		sample = 1
	case sample < -1:
		sample = -1
	}
	w.buf.Data = append(w.buf.Data, int(sample*32767))
	if len(w.buf.Data) >= cap(w.buf.Data) {
		return w.flush()
	}
	return nil
}

func (w *Writer) flush() error {
	if len(w.buf.Data) == 0 {
		return nil
	}
	if err := w.enc.Write(w.buf); err != nil {
		return err
	}
	w.buf.Data = w.buf.Data[:0]
	return nil
}

// Close flushes any buffered samples and finalizes the WAV header.
func (w *Writer) Close() error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.enc.Close()
}
