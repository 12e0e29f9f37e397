package dict

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Binary dictionary layout. The format is reverse engineered from user.dic
// files written by the Windows engine; all multi-byte integers are little
// endian. The file has four regions at fixed offsets:
//
//	[0x000, 0x030)  header: magic, version, entry count, charset tag
//	[0x030, 0xc30)  reserved region, semantics unknown (tokenizer internals)
//	[0xc30, ...)    one 32-byte metadata record per entry
//	following       null-terminated CSV string records, one per entry
//
// The string table begins right after the metadata table; with a single
// entry that is offset 0xc50, as seen in the reference files.
const (
	headerSize      = 0x30
	versionOffset   = 0x08
	countOffset     = 0x0c
	charsetOffset   = 0x28
	metaTableOffset = 0xc30
	metaRecordSize  = 32

	formatVersion = 1
	dicCharset    = "utf-8"
)

var dicMagic = [8]byte{'U', 'D', 'I', 'C', 0x00, 0x01, 0x00, 0x00}

// reservedWords are the non-zero 32-bit values observed in the reserved
// region of every reference file. Their meaning is not derivable from engine
// behavior; the engine rejects files where they are zeroed, so the encoder
// reproduces them verbatim. Do not reinterpret or alter them without new
// reference files.
var reservedWords = []struct {
	off int
	val uint32
}{
	{0x30, 0x00000001},
	{0x34, 0x00000c30},
	{0x38, 0x00000c50},
	{0x3c, 0x00000400},
	{0x40, 0x00010000},
	{0x244, 0x00000001},
	{0x448, 0x00000020},
	{0xc2c, 0x0000ffff},
}

// Values the engine stores per record that map to no logical entry field.
// The context IDs and cost come straight from the reference files; every
// entry the official editor writes carries the same ones.
const (
	binaryPartOfSpeech       = "名詞"
	binaryPartOfSpeechDetail = "固有名詞"
	nounContextID            = 1851
	nounWordCost             = 4000
)

// BinaryRecord is one entry of the binary dictionary as stored on disk.
type BinaryRecord struct {
	LeftID             uint16
	RightID            uint16
	Cost               int16
	PartOfSpeech       string
	PartOfSpeechDetail string
	Reading            string
	AccentPattern      string
	Priority           int
}

func stringTableOffset(count int) int {
	return metaTableOffset + count*metaRecordSize
}

// DecodeBinary parses a binary dictionary file into its records.
func DecodeBinary(data []byte) ([]BinaryRecord, error) {
	if len(data) < metaTableOffset {
		return nil, fmt.Errorf("binary dictionary too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:len(dicMagic)], dicMagic[:]) {
		return nil, fmt.Errorf("bad magic % x", data[:len(dicMagic)])
	}
	if got := string(data[charsetOffset : charsetOffset+len(dicCharset)]); got != dicCharset {
		return nil, fmt.Errorf("unsupported charset %q", got)
	}
	if v := binary.LittleEndian.Uint32(data[versionOffset:]); v != formatVersion {
		return nil, fmt.Errorf("unsupported dictionary version %d", v)
	}

	count := int(binary.LittleEndian.Uint32(data[countOffset:]))
	pos := stringTableOffset(count)
	if len(data) < pos {
		return nil, fmt.Errorf("binary dictionary truncated: %d entries need %d bytes, have %d",
			count, pos, len(data))
	}

	records := make([]BinaryRecord, 0, count)
	for i := 0; i < count; i++ {
		base := metaTableOffset + i*metaRecordSize

		// The first four fields are stored twice per record. Both copies
		// must agree, otherwise the file was not written by the engine.
		if !bytes.Equal(data[base:base+8], data[base+16:base+24]) {
			return nil, &MalformedRecordError{
				Index:  i,
				Raw:    fmt.Sprintf("% x", data[base:base+24]),
				Reason: "metadata mirror mismatch",
			}
		}

		term := bytes.IndexByte(data[pos:], 0x00)
		if term < 0 {
			return nil, &MalformedRecordError{
				Index:  i,
				Raw:    string(data[pos:]),
				Reason: "string record not terminated",
			}
		}
		raw := string(data[pos : pos+term])
		pos += term + 1

		fields := strings.Split(raw, ",")
		if len(fields) < 7 {
			return nil, &MalformedRecordError{
				Index:  i,
				Raw:    raw,
				Reason: fmt.Sprintf("want 7 comma-separated fields, got %d", len(fields)),
			}
		}
		priority, err := strconv.Atoi(fields[6])
		if err != nil {
			return nil, &MalformedRecordError{
				Index:  i,
				Raw:    raw,
				Reason: fmt.Sprintf("priority field %q is not a number", fields[6]),
			}
		}

		records = append(records, BinaryRecord{
			LeftID:             binary.LittleEndian.Uint16(data[base:]),
			RightID:            binary.LittleEndian.Uint16(data[base+2:]),
			Cost:               int16(binary.LittleEndian.Uint16(data[base+6:])),
			PartOfSpeech:       fields[0],
			PartOfSpeechDetail: fields[1],
			Reading:            fields[2],
			AccentPattern:      fields[3],
			Priority:           priority,
		})
	}
	return records, nil
}

// EncodeBinary renders records as a binary dictionary file. The output is
// deterministic: the same records always produce the same bytes. The u16
// discriminator at record offset +4 is always written as 1, regardless of
// what a decoded file carried there.
func EncodeBinary(records []BinaryRecord) []byte {
	strs := make([][]byte, len(records))
	total := stringTableOffset(len(records))
	for i, r := range records {
		strs[i] = []byte(strings.Join([]string{
			r.PartOfSpeech,
			r.PartOfSpeechDetail,
			r.Reading,
			r.AccentPattern,
			"*",
			"*",
			strconv.Itoa(r.Priority),
		}, ","))
		total += len(strs[i]) + 1
	}

	buf := make([]byte, total)
	copy(buf, dicMagic[:])
	binary.LittleEndian.PutUint32(buf[versionOffset:], formatVersion)
	binary.LittleEndian.PutUint32(buf[countOffset:], uint32(len(records)))
	copy(buf[charsetOffset:], dicCharset)
	for _, w := range reservedWords {
		binary.LittleEndian.PutUint32(buf[w.off:], w.val)
	}

	pos := stringTableOffset(len(records))
	for i, r := range records {
		base := metaTableOffset + i*metaRecordSize
		binary.LittleEndian.PutUint16(buf[base:], r.LeftID)
		binary.LittleEndian.PutUint16(buf[base+2:], r.RightID)
		binary.LittleEndian.PutUint16(buf[base+4:], 1)
		binary.LittleEndian.PutUint16(buf[base+6:], uint16(r.Cost))
		binary.LittleEndian.PutUint32(buf[base+8:], uint32(len(strs[i])))
		copy(buf[base+16:base+24], buf[base:base+8])
		// +24..+28 stays zero.

		copy(buf[pos:], strs[i])
		pos += len(strs[i]) + 1
	}
	return buf
}

// recordFromEntry projects a logical entry onto the binary format. The
// projection is lossy: the surface form is dropped entirely, the accent type
// is replaced by a flat all-high pattern sized from the reading, and the part
// of speech is rendered in the engine's own fixed vocabulary.
func recordFromEntry(e Entry) BinaryRecord {
	e = ApplyDefaults(e)
	return BinaryRecord{
		LeftID:             nounContextID,
		RightID:            nounContextID,
		Cost:               nounWordCost,
		PartOfSpeech:       binaryPartOfSpeech,
		PartOfSpeechDetail: binaryPartOfSpeechDetail,
		Reading:            e.Pronunciation,
		AccentPattern:      flatAccentPattern(CountMorae(e.Pronunciation)),
		Priority:           e.Priority,
	}
}

// entryFromRecord recovers a logical entry from a binary record. The surface
// form comes back as the reading and the accent type as 0; the binary format
// stores neither.
func entryFromRecord(r BinaryRecord) Entry {
	return Entry{
		SurfaceForm:   r.Reading,
		Pronunciation: r.Reading,
		PartOfSpeech:  DefaultPartOfSpeech,
		Priority:      r.Priority,
		AccentType:    0,
		Language:      DefaultLanguage,
	}
}
