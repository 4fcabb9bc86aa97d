package graphemes

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
)

// Some constants for fragment size defaults
const (
	sixtyFour = 64
	oneKb     = 1024
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// fragment is a piece of a file's content, as broadcast by the loading
// goroutine. The final fragment of a file has last set.
type fragment struct {
	content string
	pos     int64 // start position of this fragment within the file
	last    bool
	err     error
}

// textFile represents an OS file which will be loaded as a text.
type textFile struct {
	path string
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a UTF-8 text file, and returns it as a
// Text. Clients may recommend a fragment length; 0 lets Load choose one
// depending on the file size.
//
// The file is read fragment by fragment in the background, while Load
// segments the fragments into grapheme clusters as they arrive.
func Load(name string, fragSize int64) (*Text, error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	fragments, ok := tf.cast.Sub(nil, 4)
	if !ok {
		tf.file.Close()
		return nil, fmt.Errorf("cannot subscribe to fragments of %s", name)
	}
	go loadAllFragments(tf, fragSize)
	text := FromString("")
	var app appender
	for msg := range fragments {
		frag := msg.(fragment)
		if frag.err != nil {
			tracer().Errorf("loading %s: %v", name, frag.err)
			return nil, frag.err
		}
		text.clusters.Append(app.add(frag.content, frag.last)...)
		if frag.last {
			break
		}
	}
	tracer().Infof("loaded %d bytes from %s as %d grapheme clusters",
		tf.info.Size(), name, text.Len())
	return text, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

func fragmentSize(size, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < sixtyFour:
		return max(size, 1)
	case size < oneKb:
		return sixtyFour
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// loadAllFragments reads the file front to back and publishes every fragment.
// It publishes a final fragment with last set, or a fragment carrying the
// first I/O error, and closes the file and the broadcaster.
func loadAllFragments(tf *textFile, fragSize int64) {
	defer tf.cast.Close()
	defer tf.file.Close()
	size := tf.info.Size()
	for pos := int64(0); ; pos += fragSize {
		length := min(fragSize, size-pos)
		buf := make([]byte, max(length, 0))
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && !errors.Is(err, io.EOF) {
			tf.cast.Pub(fragment{pos: pos, err: fmt.Errorf("error loading text fragment: %w", err)})
			return
		} else if int64(cnt) < length {
			tf.cast.Pub(fragment{pos: pos, err: fmt.Errorf("not all bytes loaded for text fragment at %d", pos)})
			return
		}
		last := pos+length >= size
		tf.cast.Pub(fragment{content: string(buf), pos: pos, last: last})
		if last {
			return
		}
	}
}

// appender turns a stream of fragments into grapheme clusters. A fragment
// boundary may cut a UTF-8 sequence or a cluster in two, so the trailing
// cluster of every fragment is held back until the next fragment arrives.
type appender struct {
	carry string
}

func (a *appender) add(content string, final bool) []string {
	s := a.carry + content
	a.carry = ""
	if final {
		return segment(s)
	}
	cut := len(s)
	for i := len(s) - 1; i >= 0 && i >= len(s)-utf8.UTFMax; i-- {
		if utf8.RuneStart(s[i]) {
			if !utf8.FullRuneInString(s[i:]) {
				cut = i
			}
			break
		}
	}
	tail := s[cut:]
	clusters := segment(s[:cut])
	if n := len(clusters); n > 0 {
		tail = clusters[n-1] + tail
		clusters = clusters[:n-1]
	}
	a.carry = tail
	return clusters
}
