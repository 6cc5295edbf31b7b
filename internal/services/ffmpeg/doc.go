// Package ffmpeg wraps ffmpeg for direct single-file transcoding of albums
// that ship without a disc sheet.
package ffmpeg
