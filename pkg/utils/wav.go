package utils

import (
	"encoding/base64"
	"encoding/binary"
)

// Fixed output format for synthesized speech: mono 24kHz 16-bit PCM,
// regardless of input text length.
const (
	wavSampleRate    = 24000
	wavNumChannels   = 1
	wavBitsPerSample = 16
	wavHeaderSize    = 44
)

// WrapPCMInWAV prepends a 44-byte RIFF/WAVE header to raw little-endian
// 16-bit mono 24kHz samples.
func WrapPCMInWAV(pcm []byte) []byte {
	blockAlign := wavNumChannels * wavBitsPerSample / 8
	byteRate := wavSampleRate * blockAlign

	buf := make([]byte, wavHeaderSize+len(pcm))
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(pcm)))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // audio format: PCM
	binary.LittleEndian.PutUint16(buf[22:24], wavNumChannels)
	binary.LittleEndian.PutUint32(buf[24:28], wavSampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], wavBitsPerSample)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(pcm)))
	copy(buf[wavHeaderSize:], pcm)
	return buf
}

// PCMToWAVDataURI wraps raw PCM and encodes it as a data URI the client can
// hand straight to an <audio> element.
func PCMToWAVDataURI(pcm []byte) string {
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(WrapPCMInWAV(pcm))
}
