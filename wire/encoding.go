// Copyright (c) 2025 The OxideCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the deterministic binary encoding used for txids,
// signatures, state-trie values, and persisted records (spec.md section 6):
// integers little-endian, sequences length-prefixed, enums discriminant
// tagged.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/oxidecoin/oxided/chainhash"
)

// writeElement writes the little-endian wire encoding of element to w.
func writeElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case uint8:
		return binary.Write(w, binary.LittleEndian, e)
	case uint32:
		return binary.Write(w, binary.LittleEndian, e)
	case uint64:
		return binary.Write(w, binary.LittleEndian, e)
	case int64:
		return binary.Write(w, binary.LittleEndian, e)
	case chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	default:
		return fmt.Errorf("wire: unsupported type %T", element)
	}
}

func readElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *uint8:
		return binary.Read(r, binary.LittleEndian, e)
	case *uint32:
		return binary.Read(r, binary.LittleEndian, e)
	case *uint64:
		return binary.Read(r, binary.LittleEndian, e)
	case *int64:
		return binary.Read(r, binary.LittleEndian, e)
	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	default:
		return fmt.Errorf("wire: unsupported type %T", element)
	}
}

// WriteVarInt writes val to w using a minimal-length prefixed encoding,
// mirroring the classic Bitcoin/Decred CompactSize scheme: values below
// 0xfd encode as a single byte; larger values are prefixed by 0xfd/0xfe/0xff
// followed by a fixed-width little-endian integer.
func WriteVarInt(w io.Writer, val uint64) error {
	switch {
	case val < 0xfd:
		return writeElement(w, uint8(val))
	case val <= 0xffff:
		if err := writeElement(w, uint8(0xfd)); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint16(val))
	case val <= 0xffffffff:
		if err := writeElement(w, uint8(0xfe)); err != nil {
			return err
		}
		return writeElement(w, uint32(val))
	default:
		if err := writeElement(w, uint8(0xff)); err != nil {
			return err
		}
		return writeElement(w, val)
	}
}

// ReadVarInt reads a value written by WriteVarInt.
func ReadVarInt(r io.Reader) (uint64, error) {
	var prefix uint8
	if err := readElement(r, &prefix); err != nil {
		return 0, err
	}
	switch prefix {
	case 0xfd:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xfe:
		var v uint32
		if err := readElement(r, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 0xff:
		var v uint64
		if err := readElement(r, &v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return uint64(prefix), nil
	}
}

// WriteVarBytes writes a length-prefixed byte slice to w.
func WriteVarBytes(w io.Writer, b []byte) error {
	if err := WriteVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadVarBytes reads a length-prefixed byte slice written by WriteVarBytes.
// maxAllowed bounds the length to guard against a corrupt or malicious
// length prefix forcing an oversized allocation.
func ReadVarBytes(r io.Reader, maxAllowed uint64) ([]byte, error) {
	n, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if n > maxAllowed {
		return nil, fmt.Errorf("wire: var bytes length %d exceeds max %d", n, maxAllowed)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
