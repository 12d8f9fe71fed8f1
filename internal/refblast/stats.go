package refblast

import (
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
)

// FastaStats reports the number of records and the total sequence
// length in a FASTA file. The file is memory-mapped rather than read
// onto the heap, multi-genome downloads can run to hundreds of MB.
func FastaStats(fname string) (records, bases int, err error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, 0, err
	}
	defer fp.Close()

	fi, err := fp.Stat()
	if err != nil {
		return 0, 0, err
	}
	if fi.Size() == 0 {
		return 0, 0, nil // zero-length files can't be mapped
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, 0, err
	}
	defer mm.Unmap()

	records = bytes.Count(mm, []byte(">"))

	inHeader := false
	for _, b := range mm {
		switch {
		case b == '>':
			inHeader = true
		case b == '\n':
			inHeader = false
		case !inHeader && b != '\r' && b != ' ':
			bases++
		}
	}

	return records, bases, nil
}
