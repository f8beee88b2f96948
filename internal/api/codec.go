package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes solver payloads.
type Codec interface {
	ContentType() string
	Encode(w io.Writer, v any) error
	Decode(r io.Reader, v any) error
}

const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgpack = "application/msgpack"
)

type jsonCodec struct{}

func (jsonCodec) ContentType() string { return ContentTypeJSON }

func (jsonCodec) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func (jsonCodec) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

type msgpackCodec struct{}

func (msgpackCodec) ContentType() string { return ContentTypeMsgpack }

func (msgpackCodec) Encode(w io.Writer, v any) error {
	return msgpack.NewEncoder(w).Encode(v)
}

func (msgpackCodec) Decode(r io.Reader, v any) error {
	return msgpack.NewDecoder(r).Decode(v)
}

var (
	// CodecJSON is the default codec and the one browsers speak.
	CodecJSON Codec = jsonCodec{}
	// CodecMsgpack trades readability for smaller payloads on large word lists.
	CodecMsgpack Codec = msgpackCodec{}
)

// CodecByName resolves a config or flag value.
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return CodecJSON, nil
	case "msgpack":
		return CodecMsgpack, nil
	default:
		return nil, fmt.Errorf("unknown codec %q (want json or msgpack)", name)
	}
}

// CodecForContentType picks the codec matching a Content-Type header, defaulting to JSON.
func CodecForContentType(header string) Codec {
	mediaType, _, err := mime.ParseMediaType(header)
	if err == nil && mediaType == ContentTypeMsgpack {
		return CodecMsgpack
	}

	return CodecJSON
}
