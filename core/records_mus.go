package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for persisted domain types. Timestamps are stored as
// Unix microseconds, with 0 reserved for the zero time.

// IDMUS serializes ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	num, n, err := varint.Uint64.Unmarshal(bs)
	return ID(num), n, err
}

func (idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// ProfileMUS serializes Profile values.
var ProfileMUS = profileMUS{}

type profileMUS struct{}

func (profileMUS) Marshal(v Profile, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Department, bs[n:])
	n += ord.String.Marshal(v.Contact, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += marshalStringSlice(v.Links, bs[n:])
	n += marshalStringSlice(v.Publications, bs[n:])
	n += marshalTime(v.InsertedAt, bs[n:])
	n += marshalTime(v.UpdatedAt, bs[n:])
	return n
}

func (profileMUS) Unmarshal(bs []byte) (v Profile, n int, err error) {
	var n1 int
	if v.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	for _, field := range []*string{
		&v.URL, &v.Name, &v.Department, &v.Contact, &v.Location, &v.Summary,
	} {
		if *field, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += n1
	}
	if v.Links, n1, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.Publications, n1, err = unmarshalStringSlice(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.InsertedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	if v.UpdatedAt, n1, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}

func (profileMUS) Size(v Profile) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Department)
	size += ord.String.Size(v.Contact)
	size += ord.String.Size(v.Location)
	size += ord.String.Size(v.Summary)
	size += sizeStringSlice(v.Links)
	size += sizeStringSlice(v.Publications)
	size += sizeTime(v.InsertedAt)
	size += sizeTime(v.UpdatedAt)
	return size
}

func marshalStringSlice(v []string, bs []byte) (n int) {
	n = varint.PositiveInt.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStringSlice(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.PositiveInt.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	v = make([]string, 0, length)
	for i := 0; i < length; i++ {
		s, n1, err := ord.String.Unmarshal(bs[n:])
		if err != nil {
			return nil, n + n1, err
		}
		n += n1
		v = append(v, s)
	}
	return v, n, nil
}

func sizeStringSlice(v []string) (size int) {
	size = varint.PositiveInt.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return size
}

func marshalTime(v time.Time, bs []byte) (n int) {
	var micros int64
	if !v.IsZero() {
		micros = v.UnixMicro()
	}
	return varint.Int64.Marshal(micros, bs)
}

func unmarshalTime(bs []byte) (v time.Time, n int, err error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil || micros == 0 {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func sizeTime(v time.Time) (size int) {
	var micros int64
	if !v.IsZero() {
		micros = v.UnixMicro()
	}
	return varint.Int64.Size(micros)
}
