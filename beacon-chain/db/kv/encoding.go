package kv

import (
	"github.com/golang/snappy"
	"github.com/karalabe/ssz"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "beacondb")

// encode serializes an ssz object and compresses it with snappy before it is
// written to disk.
func encode(obj ssz.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.New("cannot encode nil object")
	}
	buf := make([]byte, ssz.Size(obj))
	if err := ssz.EncodeToBytes(buf, obj); err != nil {
		return nil, errors.Wrap(err, "could not ssz encode object")
	}
	return snappy.Encode(nil, buf), nil
}

// decode decompresses a stored value and deserializes it into dst.
func decode(data []byte, dst ssz.Object) error {
	data, err := snappy.Decode(nil, data)
	if err != nil {
		return errors.Wrap(err, "could not snappy decode value")
	}
	if err := ssz.DecodeFromBytes(data, dst); err != nil {
		return errors.Wrap(err, "could not ssz decode value")
	}
	return nil
}
