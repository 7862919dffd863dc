package database

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// uuidSubtype is the BSON binary subtype for RFC 4122 UUIDs. Without a
// registered codec the driver falls back to encoding uuid.UUID as an
// array of sixteen ints, which round-trips but is unreadable and
// unindexable as a UUID in the store itself.
const uuidSubtype = byte(0x04)

var tUUID = reflect.TypeOf(uuid.UUID{})

func uuidEncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tUUID {
		return bsoncodec.ValueEncoderError{
			Name:     "uuidEncodeValue",
			Types:    []reflect.Type{tUUID},
			Received: val,
		}
	}
	id := val.Interface().(uuid.UUID)
	return vw.WriteBinaryWithSubtype(id[:], uuidSubtype)
}

func uuidDecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tUUID {
		return bsoncodec.ValueDecoderError{
			Name:     "uuidDecodeValue",
			Types:    []reflect.Type{tUUID},
			Received: val,
		}
	}

	var id uuid.UUID
	switch vrType := vr.Type(); vrType {
	case bsontype.Binary:
		data, subtype, err := vr.ReadBinary()
		if err != nil {
			return err
		}
		if subtype != uuidSubtype {
			return fmt.Errorf("cannot decode binary subtype %#x into a UUID", subtype)
		}
		id, err = uuid.FromBytes(data)
		if err != nil {
			return err
		}
	case bsontype.String:
		// documents written by hand or by older tooling carry the
		// string form
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		id, err = uuid.Parse(s)
		if err != nil {
			return err
		}
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot decode %v into a UUID", vrType)
	}

	val.Set(reflect.ValueOf(id))
	return nil
}

// Registry extends the driver defaults with the uuid.UUID codec
func Registry() *bsoncodec.Registry {
	r := bson.NewRegistry()
	r.RegisterTypeEncoder(tUUID, bsoncodec.ValueEncoderFunc(uuidEncodeValue))
	r.RegisterTypeDecoder(tUUID, bsoncodec.ValueDecoderFunc(uuidDecodeValue))
	return r
}
